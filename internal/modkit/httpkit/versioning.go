package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI groups every module under /api/{version} with a shared middleware
// stack, mount receives the scoped router to register routes on
//
//	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
//	  search.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	prefix := "/api/" + strings.TrimPrefix(version, "/")
	r.Route(prefix, func(api Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		mount(api)
	})
}

// MountAPIV1 mounts under the current API version
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
