package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"autopolicy/internal/domain"
	"autopolicy/internal/handler"
	"autopolicy/internal/router"
	"autopolicy/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(svc *mocks.MockAnalysisService) *gin.Engine {
	return router.Setup(zap.NewNop(), []string{"http://localhost:8080"}, router.Handlers{
		Analysis:   handler.NewAnalysisHandler(svc, 1<<20, time.Minute),
		Comparison: handler.NewComparisonHandler(svc),
		Reference:  handler.NewReferenceHandler(),
		Page:       handler.NewPageHandler(svc, 1<<20, time.Minute),
		Health:     handler.NewHealthHandler("gemini"),
	})
}

func TestSetup_Routes(t *testing.T) {
	r := newTestRouter(new(mocks.MockAnalysisService))

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/v1/reference", http.StatusOK},
		{http.MethodGet, "/api/v1/reference/states", http.StatusOK},
		{http.MethodGet, "/api/v1/reference?state=Ohio", http.StatusBadRequest},
		{http.MethodPost, "/api/v1/analyses/manual/export?format=pdf", http.StatusBadRequest},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tt.method, tt.path, http.NoBody)
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSetup_RequestIDAndCORS(t *testing.T) {
	r := newTestRouter(new(mocks.MockAnalysisService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	req.Header.Set("Origin", "http://localhost:8080")
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:8080", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetup_ComparisonRoute(t *testing.T) {
	svc := new(mocks.MockAnalysisService)
	svc.On("CompareManualEntry", mock.Anything).Return(&domain.ComparisonChartData{UserLabel: "Your Policy"}, nil)
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/comparisons", strings.NewReader(`{"monthly_premium":120}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your Policy")
	svc.AssertExpectations(t)
}
