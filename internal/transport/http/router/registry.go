package router

import (
	"sort"

	"github.com/gin-gonic/gin"
)

// APIModule mounts a feature's routes under the API group.
type APIModule interface{ MountAPI(*gin.RouterGroup) }

// Modules may implement this to control mount order (lower mounts first);
// the default is 100.
type prioritizer interface{ Priority() int }

// Registry collects feature modules for one engine. Each engine owns its own
// registry so building several engines (tests do) never double-mounts routes.
type Registry struct {
	mods []APIModule
}

func (r *Registry) Register(mod APIModule) {
	r.mods = append(r.mods, mod)
}

func (r *Registry) MountAll(api *gin.RouterGroup) {
	mods := append([]APIModule(nil), r.mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(api)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
