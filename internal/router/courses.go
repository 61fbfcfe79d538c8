package router

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"canvasnotes/internal/app"
	"canvasnotes/internal/models"
)

func CourseRoutes(a *app.App) *chi.Mux {
	router := chi.NewRouter()

	// The in-memory list and the hidden-id view
	router.Get("/", getCoursesHandler(a))
	router.Get("/visible", getVisibleCoursesHandler(a))

	// Refreshing from the remote API
	router.Post("/", refreshCoursesHandler(a))

	// Hiding courses from the default view
	router.Post("/{courseID}/hide", setHiddenHandler(a, true))
	router.Post("/{courseID}/unhide", setHiddenHandler(a, false))

	return router
}

// GET: /api/courses
func getCoursesHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, a.Courses.Courses())
	}
}

// GET: /api/courses/visible
func getVisibleCoursesHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, a.Courses.VisibleCourses())
	}
}

// POST: /api/courses
func refreshCoursesHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A refresh is never aborted mid-flight; a caller that goes
		// away simply ignores the result.
		ok := a.Courses.Refresh(context.Background())
		render.JSON(w, r, models.SuccessResponse{Success: ok})
	}
}

// POST: /api/courses/{courseID}/hide and /unhide
func setHiddenHandler(a *app.App, hide bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "courseID"))
		if err != nil {
			http.Error(w, "invalid course id", http.StatusBadRequest)
			return
		}

		var ok bool
		if hide {
			ok = a.Courses.Hide(id)
		} else {
			ok = a.Courses.Unhide(id)
		}
		render.JSON(w, r, models.SuccessResponse{Success: ok})
	}
}
