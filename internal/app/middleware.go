package app

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router) {

	// Tag every request with an id so log lines of one request can be correlated
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestId := req.Header.Get("X-Request-Id")
			if requestId == "" {
				requestId = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", requestId)

			start := time.Now()
			next.ServeHTTP(w, req)
			log.WithFields(log.Fields{
				"requestId": requestId,
				"method":    req.Method,
				"path":      req.URL.Path,
				"duration":  time.Since(start),
			}).Debug("request handled")
		})
	})
}
