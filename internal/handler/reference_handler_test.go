package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"autopolicy/internal/handler"
)

func TestReferenceHandler_Get(t *testing.T) {
	h := handler.NewReferenceHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reference", http.NoBody)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"monthly_premium":150`)
	assert.Contains(t, w.Body.String(), `"annual_premium":1800`)
}

func TestReferenceHandler_GetState(t *testing.T) {
	h := handler.NewReferenceHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reference?state=New+York", http.NoBody)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"monthly_premium":195`)
}

func TestReferenceHandler_UnknownState(t *testing.T) {
	h := handler.NewReferenceHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reference?state=Ohio", http.NoBody)

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNKNOWN_STATE", decodeResponse(t, w.Body.Bytes()).Error.Code)
}

func TestReferenceHandler_States(t *testing.T) {
	h := handler.NewReferenceHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reference/states", http.NoBody)

	h.States(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":["California","Florida","New York","Texas"]}`, w.Body.String())
}
