package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func tokenRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireToken(token), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireToken(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		expected   int
	}{
		{name: "valid token", configured: "s3cret", header: "s3cret", expected: http.StatusOK},
		{name: "missing header", configured: "s3cret", header: "", expected: http.StatusUnauthorized},
		{name: "wrong token", configured: "s3cret", header: "nope", expected: http.StatusUnauthorized},
		{name: "server missing secret", configured: "", header: "anything", expected: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if test.header != "" {
				req.Header.Set(TokenHeader, test.header)
			}
			w := httptest.NewRecorder()
			tokenRouter(test.configured).ServeHTTP(w, req)
			assert.Equal(t, test.expected, w.Code)
		})
	}
}
