package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/golang/glog"

	"canvasnotes/internal/app"
	"canvasnotes/internal/models"
)

func ConfigRoutes(a *app.App) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", getConfigHandler(a))
	router.Post("/", SaveConfigHandler(a))
	return router
}

// GET: /api/config
//
// The saved token itself is never echoed back, only whether one
// exists.
func getConfigHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn := a.Store.Load()
		render.JSON(w, r, models.ConfigResponse{
			CanvasURL: conn.CanvasURL,
			HasToken:  conn.CanvasToken != "",
		})
	}
}

// SaveConfigHandler validates the submitted connection, probes it with
// one test fetch, and only then persists it and swaps the live client.
//
// POST: /api/config and /api/save-config
func SaveConfigHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, token, ok := decodeConnection(w, r)
		if !ok {
			return
		}

		client := a.NewClient(url, token)
		if _, err := client.FetchActiveCourses(context.Background()); err != nil {
			glog.Warningf("connection test failed for %s: %v", url, err)
			render.JSON(w, r, models.SuccessResponse{Success: false})
			return
		}

		if !a.Store.SaveConnection(url, token) {
			render.JSON(w, r, models.SuccessResponse{Success: false})
			return
		}
		a.Courses.SetClient(client)
		render.JSON(w, r, models.SuccessResponse{Success: true})
	}
}

// TestConnectionHandler runs the same validation and probe as a config
// save but never persists anything.
//
// POST: /api/test-connection
func TestConnectionHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, token, ok := decodeConnection(w, r)
		if !ok {
			return
		}

		courses, err := a.NewClient(url, token).FetchActiveCourses(context.Background())
		if err != nil {
			render.JSON(w, r, models.TestConnectionResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
		render.JSON(w, r, models.TestConnectionResponse{
			Success:     true,
			Message:     fmt.Sprintf("Connected successfully, found %d active courses", len(courses)),
			CourseCount: len(courses),
		})
	}
}

// decodeConnection reads and validates a {canvas_url, canvas_token}
// body. On a validation failure it has already written a 4xx response.
func decodeConnection(w http.ResponseWriter, r *http.Request) (url, token string, ok bool) {
	var req models.SaveConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", "", false
	}

	url = strings.TrimSpace(req.CanvasURL)
	token = strings.TrimSpace(req.CanvasToken)
	if url == "" || token == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, models.SuccessResponse{Success: false})
		return "", "", false
	}
	return url, token, true
}
