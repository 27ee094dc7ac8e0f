package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingLogger captures the request/response log calls.
type recordingLogger struct {
	requests  []string
	statuses  []int
	sizes     []int
	durations []time.Duration
}

func (r *recordingLogger) Info(msg string)                           {}
func (r *recordingLogger) Infof(format string, args ...interface{})  {}
func (r *recordingLogger) Error(msg string)                          {}
func (r *recordingLogger) Errorf(format string, args ...interface{}) {}
func (r *recordingLogger) Debug(msg string)                          {}
func (r *recordingLogger) Debugf(format string, args ...interface{}) {}

func (r *recordingLogger) RequestLog(method string, path string) {
	r.requests = append(r.requests, method+" "+path)
}

func (r *recordingLogger) ResponseLog(status int, size int, duration time.Duration) {
	r.statuses = append(r.statuses, status)
	r.sizes = append(r.sizes, size)
	r.durations = append(r.durations, duration)
}

func TestHTTPLogHandler(t *testing.T) {
	log := &recordingLogger{}
	httpLog := NewHTTPLoger(log)

	handler := httpLog.HTTPLogHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/?text=Hello", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, []string{"GET /?text=Hello"}, log.requests)
	assert.Equal(t, []int{http.StatusTeapot}, log.statuses)
	assert.Equal(t, []int{len("short and stout")}, log.sizes)
}

func TestHTTPLogHandlerDefaultStatus(t *testing.T) {
	log := &recordingLogger{}
	httpLog := NewHTTPLoger(log)

	handler := httpLog.HTTPLogHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))

	req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, []int{http.StatusOK}, log.statuses)
}
