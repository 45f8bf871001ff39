package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newParamRouter() *gin.Engine {
	r := gin.New()
	r.GET("/questions/:id", ExtractUintParam("id", "questionID"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.MustGet("questionID").(uint)})
	})
	return r
}

func TestExtractUintParam(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"валидный ID", "/questions/12", http.StatusOK},
		{"нулевой ID", "/questions/0", http.StatusNotFound},
		{"не число", "/questions/abc", http.StatusNotFound},
		{"отрицательный", "/questions/-4", http.StatusNotFound},
	}

	router := newParamRouter()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"id":12}`, w.Body.String())
			} else {
				assert.JSONEq(t, `{"success":false,"error":404,"message":"resource not found"}`, w.Body.String())
			}
		})
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(header)
	require.NoError(t, err, "должен сгенерироваться UUID")
	assert.Equal(t, header, w.Body.String())
}

func TestRequestID_KeepsClientValue(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	clientID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, clientID)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, clientID, w.Header().Get(RequestIDHeader))
}
