package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intern-tracker/internal/domain"
	"intern-tracker/internal/service"
	httpez "intern-tracker/internal/transport/http/ez"
)

type internModule struct {
	svc *service.InternService
}

func (m internModule) MountAPI(api *gin.RouterGroup) {
	ezInterns := httpez.New(api.Group("/interns"))
	svc := m.svc

	type listQ struct {
		Q      string `form:"q"`
		Status string `form:"status"`
		Role   string `form:"role"`
		Page   string `form:"page"`
		Limit  string `form:"limit"`
	}

	httpez.Register(ezInterns, httpez.Action[listQ, *service.ListResult]{
		Method: http.MethodGet,
		Path:   "",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (*service.ListResult, error) {
			f := domain.Filter{Search: in.Q, Status: in.Status, Role: in.Role}
			return svc.List(c.Request.Context(), f, in.Page, in.Limit)
		},
	})

	httpez.Register(ezInterns, httpez.Action[listQ, *domain.Stats]{
		Method: http.MethodGet,
		Path:   "/stats",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (*domain.Stats, error) {
			f := domain.Filter{Search: in.Q, Status: in.Status, Role: in.Role}
			return svc.Stats(c.Request.Context(), f)
		},
	})

	httpez.Register(ezInterns, httpez.Action[domain.InternInput, *domain.Intern]{
		Method: http.MethodPost,
		Path:   "",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *domain.InternInput) (*domain.Intern, error) {
			return svc.Create(c.Request.Context(), *in)
		},
	})

	httpez.Register(ezInterns, httpez.Action[struct{}, *domain.Intern]{
		Method: http.MethodGet,
		Path:   "/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Intern, error) {
			return svc.Get(c.Request.Context(), c.Param("id"))
		},
	})

	httpez.Register(ezInterns, httpez.Action[domain.InternInput, *domain.Intern]{
		Method: http.MethodPatch,
		Path:   "/:id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *domain.InternInput) (*domain.Intern, error) {
			return svc.Update(c.Request.Context(), c.Param("id"), *in)
		},
	})

	httpez.Register(ezInterns, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/:id",
		Binder: httpez.BindNone,
		Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			return nil, svc.Delete(c.Request.Context(), c.Param("id"))
		},
	})
}
