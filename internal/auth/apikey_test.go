package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(keys map[string]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyMiddleware(keys))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, TenantID(c))
	})
	return r
}

func TestAPIKeyMiddleware(t *testing.T) {
	r := newRouter(map[string]string{"key1": "tenant1", "": "nobody"})

	tests := []struct {
		name   string
		key    string
		status int
		body   string
	}{
		{"known key", "key1", http.StatusOK, "tenant1"},
		{"padded key", "  key1 ", http.StatusOK, "tenant1"},
		{"unknown key", "nope", http.StatusUnauthorized, `{"error":"unauthorized"}`},
		{"missing key", "", http.StatusUnauthorized, `{"error":"unauthorized"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}
