// Package ez registers REST actions declaratively: bind the input, run the
// handler, write the output or the mapped error. Handlers stay free of
// serialization concerns.
package ez

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "intern-tracker/internal/transport/http/response"
)

type Binder int

const (
	BindNone Binder = iota
	BindJSON
	BindQuery
)

type Group struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) *Group { return &Group{g: g} }

type Action[In any, Out any] struct {
	Method string
	Path   string
	Binder Binder
	// Status overrides the 200 success status; http.StatusNoContent
	// suppresses the body entirely.
	Status  int
	Handler func(c *gin.Context, in *In) (Out, error)
}

func Register[In any, Out any](e *Group, a Action[In, Out]) {
	e.g.Handle(a.Method, a.Path, func(c *gin.Context) {
		in := new(In)
		switch a.Binder {
		case BindJSON:
			if err := c.ShouldBindJSON(in); err != nil {
				c.AbortWithStatusJSON(resp.Err(http.StatusBadRequest, resp.CodeValidation, err.Error()))
				return
			}
		case BindQuery:
			if err := c.ShouldBindQuery(in); err != nil {
				c.AbortWithStatusJSON(resp.Err(http.StatusBadRequest, resp.CodeValidation, err.Error()))
				return
			}
		}

		out, err := a.Handler(c, in)
		if err != nil {
			c.AbortWithStatusJSON(resp.FromError(err))
			return
		}

		status := a.Status
		if status == 0 {
			status = http.StatusOK
		}
		if status == http.StatusNoContent {
			c.Status(status)
			return
		}
		c.JSON(status, out)
	})
}
