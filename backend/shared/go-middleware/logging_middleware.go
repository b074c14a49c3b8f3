package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/harborview/realestate/backend/shared/go-utils"
)

// responseWriter captures HTTP status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs method, path, status and duration of every request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		entry := utils.Logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rw.statusCode,
			"duration": time.Since(start).String(),
			"remote":   r.RemoteAddr,
		})
		if rw.statusCode >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request served")
	})
}

// PanicResponder writes the response for a recovered panic.
type PanicResponder func(w http.ResponseWriter, r *http.Request, report utils.ErrorReport)

// RespondPanicJSON writes the JSON error envelope for a recovered panic.
func RespondPanicJSON(w http.ResponseWriter, _ *http.Request, report utils.ErrorReport) {
	utils.RespondErrorWithCode(
		w, http.StatusInternalServerError, utils.ErrCodeInternal, "An unexpected error occurred", report.Details,
	)
}

// RecoverMiddleware turns a handler panic into a logged 500 instead of a
// dropped connection.
func RecoverMiddleware(devMode bool) func(http.Handler) http.Handler {
	return RecoverMiddlewareWith(devMode, RespondPanicJSON)
}

// RecoverMiddlewareWith is RecoverMiddleware with a caller-supplied
// response, so server-rendered routes can show an error page. A nil
// respond falls back to RespondPanicJSON.
func RecoverMiddlewareWith(devMode bool, respond PanicResponder) func(http.Handler) http.Handler {
	if respond == nil {
		respond = RespondPanicJSON
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					report := utils.NormalizeError(rec, devMode)
					report.StatusCode = http.StatusInternalServerError
					respond(w, r, report)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
