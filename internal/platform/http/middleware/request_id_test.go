package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newEngine(t *testing.T, seen *string) *gin.Engine {
	t.Helper()

	r := gin.New()
	r.Use(RequestID(), AccessLog(slogt.New(t)))
	r.GET("/ping", func(c *gin.Context) {
		*seen = c.GetString(ContextRequestID)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequestID_PropagatesValidHeader(t *testing.T) {
	t.Parallel()

	var seen string
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123_XYZ")
	w := httptest.NewRecorder()

	newEngine(t, &seen).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "abc-123_XYZ", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123_XYZ", seen)
}

func TestRequestID_GeneratesWhenMissingOrInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"contains space", "abc 123"},
		{"contains newline", "abc\\n123"},
		{"too long", strings.Repeat("a", maxIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var seen string
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.header != "" {
				req.Header.Set(HeaderRequestID, tt.header)
			}
			w := httptest.NewRecorder()

			newEngine(t, &seen).ServeHTTP(w, req)

			got := w.Header().Get(HeaderRequestID)
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, got, seen)
		})
	}
}

func TestIsValidRequestID(t *testing.T) {
	t.Parallel()

	assert.True(t, isValidRequestID("a"))
	assert.True(t, isValidRequestID(strings.Repeat("a", maxIDLength)))
	assert.False(t, isValidRequestID(""))
	assert.False(t, isValidRequestID("id/with/slash"))
}
