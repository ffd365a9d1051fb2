package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorUsesHTTPStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	Error(c, CodeConflict, "email is already registered")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"email is already registered","requestId":"req-1"}`, w.Body.String())
	assert.True(t, c.IsAborted())
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(2, 20, 41)
	assert.Equal(t, int64(3), p.TotalPage)
	assert.Equal(t, int64(0), BuildPagination(1, 0, 10).TotalPage)
}

func TestShortcutHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		call   func(*gin.Context, string)
		status int
	}{
		{"bad request", BadRequest, http.StatusBadRequest},
		{"unauthorized", Unauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden, http.StatusForbidden},
		{"not found", NotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tc.call(c, "msg")
			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, `{"error":"msg"}`, w.Body.String())
		})
	}
}
