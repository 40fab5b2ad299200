package planner

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) ResolveAndPlan(ctx context.Context, req types.PlanRequest) (*types.Plan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Plan), args.Error(1)
}

func (m *MockService) BuildPlanDirect(ctx context.Context, poiIDs []string, transportation string) (*types.Plan, error) {
	args := m.Called(ctx, poiIDs, transportation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Plan), args.Error(1)
}

func postPlan(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/itinerary/plan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.CreatePlan(rr, req)
	return rr
}

func TestCreatePlanHandler(t *testing.T) {
	t.Run("returns the assembled plan", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ResolveAndPlan", mock.Anything, mock.Anything).Return(&types.Plan{
			Mode:    types.ModeWalking,
			Summary: "故宫 -> 天坛",
			Stops: []types.PlanStop{
				{Seq: 1, POIID: "gugong", Name: "故宫", Status: types.StopStatusUpcoming},
				{Seq: 2, POIID: "tiantan", Name: "天坛", Status: types.StopStatusUpcoming},
			},
		}, nil)
		handler := NewHandler(svc, slog.Default())

		rr := postPlan(t, handler, `{"intent":"PICK_POIS","poi_ids":["gugong","tiantan"],"keep_order":true}`)

		require.Equal(t, http.StatusOK, rr.Code)
		var plan types.Plan
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
		assert.Equal(t, "故宫 -> 天坛", plan.Summary)
		require.Len(t, plan.Stops, 2)
		assert.Equal(t, "gugong", plan.Stops[0].POIID)
		svc.AssertExpectations(t)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		svc := new(MockService)
		handler := NewHandler(svc, slog.Default())

		rr := postPlan(t, handler, `{"intent":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "ResolveAndPlan", mock.Anything, mock.Anything)
	})

	t.Run("invalid request maps to 400", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ResolveAndPlan", mock.Anything, mock.Anything).Return(nil, types.ErrInvalidRequest)
		handler := NewHandler(svc, slog.Default())

		rr := postPlan(t, handler, `{"intent":"PICK_POIS"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("no candidates maps to 422", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ResolveAndPlan", mock.Anything, mock.Anything).Return(nil, types.ErrNoCandidates)
		handler := NewHandler(svc, slog.Default())

		rr := postPlan(t, handler, `{"intent":"PRESET_ROUTE","preset_route_id":"nope"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("unexpected errors map to 500", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ResolveAndPlan", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
		handler := NewHandler(svc, slog.Default())

		rr := postPlan(t, handler, `{"intent":"PICK_POIS","poi_ids":["gugong"]}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "boom", "internal detail must not leak")
	})
}
