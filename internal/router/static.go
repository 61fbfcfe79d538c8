package router

import (
	"net/http"

	"canvasnotes/internal/app"
)

// StaticHandler serves the front-end asset tree at the root: / maps to
// index.html, other paths resolve inside the provider's tree, and
// anything missing is a 404.
func StaticHandler(a *app.App) http.Handler {
	return http.FileServer(http.FS(a.Assets.Assets()))
}
