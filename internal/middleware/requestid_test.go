package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// newRequestIDRouter builds a minimal engine whose handler echoes the context-stored
// request ID in a second header, so both storage paths can be asserted on.
func newRequestIDRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		id, _ := c.Get(RequestIDKey)
		c.Header("X-Context-Request-ID", id.(string))
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, inboundID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if inboundID != "" {
		req.Header.Set(RequestIDHeader, inboundID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ---------------------------------------------------------------------------
// RequestIDMiddleware
// ---------------------------------------------------------------------------

func TestRequestIDMiddleware_GeneratesValidUUIDWhenAbsent(t *testing.T) {
	w := doRequest(newRequestIDRouter(), "")

	id := w.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatal("expected X-Request-ID response header to be set")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("generated request ID %q is not a UUID: %v", id, err)
	}
}

func TestRequestIDMiddleware_PropagatesIncomingID(t *testing.T) {
	const upstreamID = "upstream-provided-request-id-001"

	w := doRequest(newRequestIDRouter(), upstreamID)
	if got := w.Header().Get(RequestIDHeader); got != upstreamID {
		t.Errorf("response X-Request-ID = %q, want %q", got, upstreamID)
	}
}

func TestRequestIDMiddleware_ContextMatchesHeader(t *testing.T) {
	w := doRequest(newRequestIDRouter(), "")

	responseID := w.Header().Get(RequestIDHeader)
	contextID := w.Header().Get("X-Context-Request-ID")
	if contextID == "" {
		t.Error("request ID was not stored in gin.Context under RequestIDKey")
	}
	if responseID != contextID {
		t.Errorf("response header ID %q does not match context ID %q", responseID, contextID)
	}
}

func TestRequestIDMiddleware_UniquePerRequest(t *testing.T) {
	r := newRequestIDRouter()
	seen := make(map[string]struct{}, 10)
	for i := 0; i < 10; i++ {
		id := doRequest(r, "").Header().Get(RequestIDHeader)
		if _, dup := seen[id]; dup {
			t.Errorf("duplicate request ID %q on iteration %d", id, i)
		}
		seen[id] = struct{}{}
	}
}
