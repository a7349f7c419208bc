package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi/dealer-restock/internal/domain"
	"github.com/prasetyadi/dealer-restock/internal/normalize"
	"github.com/prasetyadi/dealer-restock/internal/planner"
	"github.com/prasetyadi/dealer-restock/internal/service"
)

type stubRepo struct{}

func (stubRepo) LoadFeeds(ctx context.Context, dealer string) (*planner.RawFeeds, error) {
	return &planner.RawFeeds{
		Schedule: []normalize.Record{
			{"dealer": dealer, "customer": dealer + " stock", "model": "Voyager 450", "forecast_date": "01/03/2026"},
		},
		ModelTiers:  []normalize.Record{{"model": "Voyager 450", "tier": "A1"}},
		TierTargets: []normalize.Record{{"tier": "A1", "share": 0.5}},
	}, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewRestockHandler(service.NewRestockService(stubRepo{}, nil, nil))

	router := gin.New()
	router.GET("/plan", handler.GetPlan)
	router.GET("/checkpoint", handler.GetCheckpoint)
	return router
}

func TestGetPlan(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plan?dealer=north-yard", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result domain.PlanResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "north-yard", result.Dealer)
	assert.False(t, result.NothingToPlan)
	assert.NotEmpty(t, result.Slots)
}

func TestGetPlan_MissingDealer(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/plan", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCheckpoint(t *testing.T) {
	router := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkpoint?dealer=north-yard", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var report domain.StockMinReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.True(t, report.Applicable)
}
