package router

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/golang/glog"

	"canvasnotes/internal/app"
)

// UpdateCheckHandler reports whether a newer build is advertised by
// the version feed. A feed failure degrades to a no-update payload
// with an error message rather than failing the request.
//
// GET: /api/update-check
func UpdateCheckHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := a.Updater.CheckVersion(r.Context())
		if err != nil {
			glog.Warningf("update check failed: %v", err)
			info.Error = "Failed to check for updates"
		}
		info.InstallID = a.InstallID
		render.JSON(w, r, info)
	}
}
