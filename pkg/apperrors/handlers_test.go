package apperrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveWithError(err error) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		HandleError(c, err)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return w
}

func TestHandleError_AppError(t *testing.T) {
	w := serveWithError(New(CodeNotFound, "resource", "Resource not found", http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestHandleError_RedactsInternalsWhenDebugOff(t *testing.T) {
	SetDebug(false)
	defer SetDebug(true)

	w := serveWithError(errors.New("pq: connection refused to 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestHandleError_ExposesInternalsWhenDebugOn(t *testing.T) {
	w := serveWithError(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}
