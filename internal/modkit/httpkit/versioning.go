package httpkit

import (
	"net/http"
	"strings"
)

// APIPrefix returns /api or /api/{version}
func APIPrefix(version string) string {
	ver := strings.Trim(version, "/")
	if ver == "" {
		return "/api"
	}
	return "/api/" + ver
}

// MountAPI mounts a subrouter under APIPrefix(version), applies any per-scope middleware,
// then invokes mount to register routes on that scoped router.
// chi refuses a second mount on the same prefix, so register every /api module in one call
//
// example:
//
//	httpkit.MountAPI(r, "", nil, func(api httpkit.Router) {
//	  forum.MountRoutes(api)
//	  chat.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, APIPrefix(version), mw, mount)
}
