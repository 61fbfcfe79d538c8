package router

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"

	"canvasnotes/internal/app"
	"canvasnotes/internal/models"
)

// urlParam returns a route parameter with percent-escapes decoded;
// course names routinely contain spaces.
func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

func NoteRoutes(a *app.App) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/{courseName}", listNotesHandler(a))
	router.Post("/{courseName}", saveNoteHandler(a))
	router.Delete("/{courseName}/{filename}", deleteNoteHandler(a))
	return router
}

// GET: /api/files/{courseName}
func listNotesHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, a.Notes.List(urlParam(r, "courseName")))
	}
}

// POST: /api/files/{courseName}
func saveNoteHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SaveNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Filename) == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, models.SuccessResponse{Success: false})
			return
		}

		ok := a.Notes.Save(urlParam(r, "courseName"), req.Filename, req.Content)
		render.JSON(w, r, models.SuccessResponse{Success: ok})
	}
}

// DELETE: /api/files/{courseName}/{filename}
func deleteNoteHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := a.Notes.Delete(urlParam(r, "courseName"), urlParam(r, "filename"))
		if err != nil {
			glog.Warningf("could not delete note: %v", err)
		}
		render.JSON(w, r, models.SuccessResponse{Success: err == nil})
	}
}
