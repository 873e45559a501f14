package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordtone/config"
	"github.com/jsphweid/chordtone/model"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

// Route is an http.Handler that knows the mux pattern
// and methods under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
	Methods() []string
}

// NewRouter registers routes on a gorilla router wrapped in CORS handling.
func NewRouter(log *zap.SugaredLogger, cfg config.Config, routes []Route) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestIDMiddleware(log), jsonMiddleware)
	for _, route := range routes {
		router.Handle(route.Pattern(), route).Methods(route.Methods()...)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(router)
}

func requestIDMiddleware(log *zap.SugaredLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, id)
			log.Debugw("request", "method", r.Method, "path", r.URL.Path, "request_id", id)
			next.ServeHTTP(w, r)
		})
	}
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}
