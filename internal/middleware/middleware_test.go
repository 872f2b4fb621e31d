package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smap-engine/pkg/log"
	"smap-engine/pkg/scope"
)

const testInternalKey = "0123456789abcdef0123456789abcdef"

func newAuthRouter(t *testing.T) (*gin.Engine, *scope.Payload) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := log.Init(log.ZapConfig{Level: "fatal", Mode: "development", Encoding: "console"})
	mw := New(l, testInternalKey)

	var seen scope.Payload
	r := gin.New()
	r.Use(mw.Auth())
	r.GET("/ping", func(c *gin.Context) {
		payload, ok := scope.GetPayloadFromContext(c.Request.Context())
		require.True(t, ok)
		seen = payload
		c.Status(http.StatusOK)
	})

	return r, &seen
}

func doAuth(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	t.Run("valid key and tenant pass with scope set", func(t *testing.T) {
		r, seen := newAuthRouter(t)

		w := doAuth(r, map[string]string{
			"X-Internal-Key": testInternalKey,
			"X-Tenant-Id":    "tenant-1",
			"X-User-Id":      "user-1",
			"X-User-Role":    "admin",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tenant-1", seen.TenantID)
		assert.Equal(t, "user-1", seen.UserID)
		assert.Equal(t, "admin", seen.Role)
	})

	t.Run("missing key is unauthorized", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		w := doAuth(r, map[string]string{"X-Tenant-Id": "tenant-1"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong key is unauthorized", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		w := doAuth(r, map[string]string{
			"X-Internal-Key": "ffffffffffffffffffffffffffffffff",
			"X-Tenant-Id":    "tenant-1",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing tenant is unauthorized", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		w := doAuth(r, map[string]string{"X-Internal-Key": testInternalKey})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
