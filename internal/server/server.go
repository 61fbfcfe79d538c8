package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang/glog"
	"github.com/rs/cors"

	"canvasnotes/internal/app"
	rtr "canvasnotes/internal/router"
)

func Routes(a *app.App) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Logger, // Log API Request Calls
		recoverer,
	)

	router.Route("/api", func(r chi.Router) {
		r.Mount("/courses", rtr.CourseRoutes(a))
		r.Mount("/config", rtr.ConfigRoutes(a))
		r.Mount("/files", rtr.NoteRoutes(a))

		// Legacy alias some front-end builds still call
		r.Post("/save-config", rtr.SaveConfigHandler(a))
		r.Post("/test-connection", rtr.TestConnectionHandler(a))
		r.Get("/update-check", rtr.UpdateCheckHandler(a))
	})

	router.Handle("/*", rtr.StaticHandler(a))

	return router
}

// Handler wraps the routes with the CORS policy the browser front end
// relies on.
func Handler(a *app.App) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"Content-Type"},
		AllowedMethods: []string{"GET", "POST", "DELETE"},
	})
	return c.Handler(Routes(a))
}

func Start(a *app.App) {
	handler := Handler(a)
	log.Printf("Server is listening on http://localhost:%v\n", a.Cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Cfg.Port), handler))
}

// recoverer turns a handler panic into a 500 whose body is the panic
// text. This is the only channel that carries raw error text to the
// front end.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				glog.Errorf("panic handling %s %s: %v", r.Method, r.URL.Path, rvr)
				http.Error(w, fmt.Sprintf("%v", rvr), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
