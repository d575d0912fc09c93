package fakeapi

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
)

type storedResponse struct {
	status      int
	contentType string
	body        []byte
}

type idempotencyCache struct {
	mu        sync.Mutex
	responses map[string]storedResponse
}

func newIdempotencyCache() *idempotencyCache {
	return &idempotencyCache{responses: make(map[string]storedResponse)}
}

func (c *idempotencyCache) get(key string) (storedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.responses[key]

	return resp, ok
}

func (c *idempotencyCache) put(key string, resp storedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.responses[key] = resp
}

// idempotent replays the stored response of a mutating request that repeats
// an Idempotency-Key already seen for the same user, method and path. Only
// successful responses are stored, so a failed request can be retried.
func (s *Server) idempotent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("Idempotency-Key")
		if key == "" || r.Method == http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		scoped := principalFrom(r.Context()).userID.String() + " " + r.Method + " " + r.URL.Path + " " + key

		if resp, ok := s.idem.get(scoped); ok {
			s.logger.Debug("replaying idempotent request", "method", r.Method, "path", r.URL.Path, "key", key)

			if resp.contentType != "" {
				w.Header().Set("Content-Type", resp.contentType)
			}

			w.Header().Set("Idempotent-Replayed", "true")
			w.WriteHeader(resp.status)
			w.Write(resp.body)

			return
		}

		var buf bytes.Buffer

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Tee(&buf)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		if status < 300 {
			s.idem.put(scoped, storedResponse{
				status:      status,
				contentType: ww.Header().Get("Content-Type"),
				body:        buf.Bytes(),
			})
		}
	})
}
