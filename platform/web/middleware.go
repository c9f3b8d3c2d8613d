package web

import (
	"net/http"
	"time"

	"shopping-samples/internal/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// LogRequests logs every request at debug level with the status it was
// answered with.
func LogRequests(next HandleFunc) HandleFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		err := next(rec, r)
		logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"elapsed", time.Since(start),
		)
		return err
	}
}
