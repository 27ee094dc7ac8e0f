package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ribassu/qrcodenextbot/internal/logger"
)

// httpLogger is logger interface for middleware logger
type httpLogger interface {
	logger.Logger
	RequestLog(method string, path string)
	ResponseLog(status int, size int, duration time.Duration)
}

type responseData struct {
	status int
	size   int
}

type HTTPLogger struct {
	log httpLogger
}

func NewHTTPLoger(logger httpLogger) *HTTPLogger {
	return &HTTPLogger{logger}
}

// loggingResponseWriter allows use ResponnseWriter and stores information to log
type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (r *loggingResponseWriter) Write(b []byte) (int, error) {

	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	if r.responseData.status == 0 {
		r.responseData.status = 200
	}
	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {

	r.responseData.status = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (l *HTTPLogger) HTTPLogHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()

		method := r.Method
		path := r.RequestURI
		l.log.RequestLog(method, path)
		l.log.Debugf("Request %s headers: %v", requestID, r.Header)

		start := time.Now()

		resD := &responseData{}

		lw := &loggingResponseWriter{
			ResponseWriter: w,
			responseData:   resD,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		l.log.Debugf("Request %s served", requestID)
		l.log.ResponseLog(resD.status, resD.size, duration)

	})
}
