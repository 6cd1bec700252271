package middleware

import (
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку лога на каждый запрос
func AccessLog(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rw := newStatusRecorder(w)

			next.ServeHTTP(rw, r)

			elapsed := time.Since(started)
			switch {
			case rw.status >= http.StatusInternalServerError:
				log.Error("%s %s - status=%d duration=%s request_id=%s",
					r.Method, r.URL.Path, rw.status, elapsed, GetRequestID(r.Context()))
			case rw.status >= http.StatusBadRequest:
				log.Warn("%s %s - status=%d duration=%s request_id=%s",
					r.Method, r.URL.Path, rw.status, elapsed, GetRequestID(r.Context()))
			default:
				log.Info("%s %s - status=%d duration=%s request_id=%s",
					r.Method, r.URL.Path, rw.status, elapsed, GetRequestID(r.Context()))
			}
		})
	}
}

// statusRecorder запоминает код ответа
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}
