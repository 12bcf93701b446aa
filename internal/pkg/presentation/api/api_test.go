package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/propertyops/property-alerts/internal/pkg/application/alerts"
	"github.com/propertyops/property-alerts/internal/pkg/infrastructure/router"
	"github.com/propertyops/property-alerts/internal/pkg/infrastructure/storage"
	"github.com/propertyops/property-alerts/pkg/types"
)

const policyRego string = `
package propertyops.authz

import rego.v1

default allow := false

allow := {"access": {"*": ["read", "write"]}} if {
	input.token != ""
}
`

func testRouter(t *testing.T, svc alerts.AlertService) (*is.I, http.Handler) {
	is := is.New(t)

	r := router.New("property-alerts-test")
	mux, err := RegisterHandlers(context.Background(), r, strings.NewReader(policyRego), svc)
	is.NoErr(err)

	return is, mux
}

func TestHealthEndpoint(t *testing.T) {
	is, mux := testRouter(t, &alerts.AlertServiceMock{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
}

func TestQueryAlertsRequiresAuthorization(t *testing.T) {
	is, mux := testRouter(t, &alerts.AlertServiceMock{})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts", nil)
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusUnauthorized, res.Code)
}

func TestQueryAlerts(t *testing.T) {
	svc := &alerts.AlertServiceMock{
		QueryFunc: func(ctx context.Context, vc types.VisibilityContext, conditions ...storage.ConditionFunc) (types.Collection[types.Alert], error) {
			return types.Collection[types.Alert]{
				Data:       []types.Alert{{ID: "alert-01", AlertType: "bill_overdue"}},
				Count:      1,
				TotalCount: 1,
			}, nil
		},
	}
	is, mux := testRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts?open=true", nil)
	req.Header.Add("Authorization", "Bearer sometoken")
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	is.Equal(1, len(svc.QueryCalls()))
	is.True(svc.QueryCalls()[0].Vc.Unrestricted)

	response := ApiResponse{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal(uint64(1), response.Meta.TotalRecords)
}

func TestGetAlertNotFound(t *testing.T) {
	svc := &alerts.AlertServiceMock{
		GetByIDFunc: func(ctx context.Context, alertID string, vc types.VisibilityContext) (types.Alert, error) {
			return types.Alert{}, alerts.ErrAlertNotFound
		},
	}
	is, mux := testRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/alerts/nope", nil)
	req.Header.Add("Authorization", "Bearer sometoken")
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNotFound, res.Code)
}

func TestPatchAlertDismisses(t *testing.T) {
	svc := &alerts.AlertServiceMock{
		DismissFunc: func(ctx context.Context, alertID string, vc types.VisibilityContext) error {
			return nil
		},
	}
	is, mux := testRouter(t, svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/alerts/alert-01", strings.NewReader(`{"dismissed":true}`))
	req.Header.Add("Authorization", "Bearer sometoken")
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal(1, len(svc.DismissCalls()))
	is.Equal("alert-01", svc.DismissCalls()[0].AlertID)
}

func TestPatchAlertMarksRead(t *testing.T) {
	svc := &alerts.AlertServiceMock{
		MarkReadFunc: func(ctx context.Context, alertID string, vc types.VisibilityContext) error {
			return nil
		},
	}
	is, mux := testRouter(t, svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/alerts/alert-01", strings.NewReader(`{"read":true}`))
	req.Header.Add("Authorization", "Bearer sometoken")
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusNoContent, res.Code)
	is.Equal(1, len(svc.MarkReadCalls()))
}

func TestPatchAlertRejectsEmptyPatch(t *testing.T) {
	is, mux := testRouter(t, &alerts.AlertServiceMock{})

	req := httptest.NewRequest(http.MethodPatch, "/api/v0/alerts/alert-01", strings.NewReader(`{}`))
	req.Header.Add("Authorization", "Bearer sometoken")
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusBadRequest, res.Code)
}

func TestGenerateEndpointReturnsPassResult(t *testing.T) {
	svc := &alerts.AlertServiceMock{
		GenerateAlertsFunc: func(ctx context.Context, vc types.VisibilityContext) types.PassResult {
			return types.PassResult{Created: 3, Resolved: 1}
		},
	}
	is, mux := testRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/alerts/generate", nil)
	req.Header.Add("Authorization", "Bearer sometoken")
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)

	response := struct {
		Data types.PassResult `json:"data"`
	}{}
	is.NoErr(json.Unmarshal(res.Body.Bytes(), &response))
	is.Equal(3, response.Data.Created)
	is.Equal(1, response.Data.Resolved)
}

func TestDismissAllEndpoint(t *testing.T) {
	svc := &alerts.AlertServiceMock{
		DismissAllFunc: func(ctx context.Context, vc types.VisibilityContext) (int, error) {
			return 5, nil
		},
	}
	is, mux := testRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/alerts/dismiss-all", nil)
	req.Header.Add("Authorization", "Bearer sometoken")
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(svc.DismissAllCalls()))
}

func TestCleanupEndpoint(t *testing.T) {
	svc := &alerts.AlertServiceMock{
		CleanupAlertsFunc: func(ctx context.Context) types.CleanupResult {
			return types.CleanupResult{Dismissed: 2, Deleted: 1}
		},
	}
	is, mux := testRouter(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/alerts/cleanup", nil)
	req.Header.Add("Authorization", "Bearer sometoken")
	res := httptest.NewRecorder()
	mux.ServeHTTP(res, req)

	is.Equal(http.StatusOK, res.Code)
	is.Equal(1, len(svc.CleanupAlertsCalls()))
}
