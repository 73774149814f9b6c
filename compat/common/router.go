package common

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.reef.dev/open/fin/compat/response"
)

// Router constructs the application router with the standard middleware stack.
func Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	return router
}

// Handler is an http handler that reports failures by returning an error.
type Handler func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts an error-returning handler, rendering failures as json through
// response.HandleError.
func Wrap(handler Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := handler(w, r); err != nil {
			response.HandleError(w, err)
		}
	}
}
