package middlewares

import (
	"bufio"
	"net"
	"net/http"
	"sync"
)

// ResponseWriter wraps http.ResponseWriter to run hooks right before the status
// line is sent. Hooks receive the status the handler chose, so they can still
// add headers that depend on it.
type ResponseWriter struct {
	http.ResponseWriter
	beforeWrite   []func(status int)
	status        int
	size          int64
	mu            sync.Mutex
	written       bool
	rewriteStatus bool
}

// NewResponseWriter wraps w. With rewriteErrors set, 4xx and 5xx statuses are
// sent as 200 because htmx does not swap error responses by default. Status
// still reports the original code.
func NewResponseWriter(w http.ResponseWriter, rewriteErrors bool) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		status:         http.StatusOK,
		rewriteStatus:  rewriteErrors,
	}
}

// OnBeforeWrite registers a hook. Hooks run once, in registration order.
func (w *ResponseWriter) OnBeforeWrite(fn func(status int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.beforeWrite = append(w.beforeWrite, fn)
}

// WriteHeader runs the hooks and sends the status line. Later calls are ignored.
func (w *ResponseWriter) WriteHeader(code int) {
	w.mu.Lock()
	if w.written {
		w.mu.Unlock()
		return
	}
	w.written = true
	w.status = code
	hooks := w.beforeWrite
	w.beforeWrite = nil
	w.mu.Unlock()

	for _, fn := range hooks {
		fn(code)
	}

	if w.rewriteStatus && code >= http.StatusBadRequest {
		code = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(code)
}

// Write sends an implicit 200 first if the handler did not call WriteHeader.
func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.Written() {
		w.WriteHeader(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(b)
	w.mu.Lock()
	w.size += int64(n)
	w.mu.Unlock()
	return n, err
}

// Status returns the status code chosen by the handler.
func (w *ResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

// Size returns the number of body bytes written.
func (w *ResponseWriter) Size() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// Written returns true once the status line has been sent.
func (w *ResponseWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Flush implements http.Flusher. Hooks run first if nothing was written yet.
func (w *ResponseWriter) Flush() {
	if !w.Written() {
		w.WriteHeader(http.StatusOK)
	}
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements http.Hijacker.
func (w *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
