package shared

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindSample struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3"`
	Quantity int    `json:"quantity" binding:"gte=1"`
}

func performBind(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidatorTagNames()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req bindSample
	return w, BindJSON(c, &req)
}

func TestBindJSONFlattensValidationErrors(t *testing.T) {
	w, ok := performBind(t, `{"email":"nope","username":"ab","quantity":0}`)
	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t,
		"email must be a valid email; username must be at least 3 characters; quantity must be greater than or equal to 1",
		body["error"])
}

func TestBindJSONMalformedBody(t *testing.T) {
	w, ok := performBind(t, `{"email":`)
	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBindJSONAcceptsValidBody(t *testing.T) {
	_, ok := performBind(t, `{"email":"a@b.co","username":"alice","quantity":2}`)
	assert.True(t, ok)
}

func TestNormalizePagination(t *testing.T) {
	page, size := NormalizePagination(0, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, size)
}
