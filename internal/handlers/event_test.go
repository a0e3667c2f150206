package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/PratikDhanave/fb-app-events-adapter/internal/facebook"
)

type stubIntegrations struct {
	i   *facebook.Integration
	err error
}

func (s stubIntegrations) For(string) (*facebook.Integration, error) { return s.i, s.err }

type nopEvents struct{}

func (nopEvents) SetUserID(string)                                                   {}
func (nopEvents) SetUserData(string, facebook.UserDataType)                          {}
func (nopEvents) ClearUserData()                                                     {}
func (nopEvents) LogEvent(facebook.EventName, facebook.Parameters)                   {}
func (nopEvents) LogEventWithValue(facebook.EventName, float64, facebook.Parameters) {}
func (nopEvents) LogPurchase(float64, string, facebook.Parameters)                   {}
func (nopEvents) Instance() any                                                      { return nil }

type nopSettings struct{}

func (nopSettings) SetDataProcessingOptions([]string) error                        { return nil }
func (nopSettings) SetDataProcessingOptionsForRegion([]string, int32, int32) error { return nil }

type stubCounter struct {
	n   int64
	err error
}

func (s stubCounter) CountAppEvents(context.Context, string, string, time.Time, time.Time) (int64, error) {
	return s.n, s.err
}

// withTenant stands in for the API key middleware.
func withTenant(tenantID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tenantID != "" {
			c.Set("tenant_id", tenantID)
		}
		c.Next()
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newEventRouter(tenantID string, reg Integrations) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(withTenant(tenantID))
	RegisterEventRoutes(r, reg)
	return r
}

func TestEventRoutes_WithoutTenantIsUnauthorized(t *testing.T) {
	r := newEventRouter("", stubIntegrations{i: facebook.New(nopEvents{}, nopSettings{})})

	for _, path := range []string{"/v1/identify", "/v1/track", "/v1/screen", "/v1/reset"} {
		w := serve(r, http.MethodPost, path, `{}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestEventRoutes_RegistryFailureIsBadGateway(t *testing.T) {
	r := newEventRouter("tenant1", stubIntegrations{err: errors.New("boom")})

	w := serve(r, http.MethodPost, "/v1/track", `{"event":"Subscribe"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"destination unavailable"}`, w.Body.String())
}

func TestEventRoutes_DroppedScreen(t *testing.T) {
	r := newEventRouter("tenant1", stubIntegrations{i: facebook.New(nopEvents{}, nopSettings{})})

	req := httptest.NewRequest(http.MethodPost, "/v1/screen", bytes.NewBufferString(`{"messageId":"m1"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"messageId":"m1","dropped":true}`, w.Body.String())
}

func TestDestinationConfig_RejectsNonObject(t *testing.T) {
	r := newEventRouter("tenant1", stubIntegrations{i: facebook.New(nopEvents{}, nopSettings{})})

	w := serve(r, http.MethodPut, "/v1/destination-config", `[1,2]`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDestinationConfig_ReturnsAppliedCompliance(t *testing.T) {
	r := newEventRouter("tenant1", stubIntegrations{i: facebook.New(nopEvents{}, nopSettings{})})

	w := serve(r, http.MethodPut, "/v1/destination-config", `{"limitedDataUse":true,"dpoState":1000,"dpoCountry":7}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"limitedDataUse":true,"dpoState":1000,"dpoCountry":0}`, w.Body.String())
}

func TestEventRoutes_IdempotencyKeyWinsOverBody(t *testing.T) {
	r := newEventRouter("tenant1", stubIntegrations{i: facebook.New(nopEvents{}, nopSettings{})})

	req := httptest.NewRequest(http.MethodPost, "/v1/track", bytes.NewBufferString(`{"event":"Subscribe","messageId":"body"}`))
	req.Header.Set("Idempotency-Key", "header")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"messageId":"header"}`, w.Body.String())
}

func TestMetricRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		tenant  string
		counter stubCounter
		query   string
		status  int
	}{
		{"ok", "tenant1", stubCounter{n: 3}, "event_name=x&from=2026-01-01T00:00:00Z&to=2026-01-02T00:00:00Z", http.StatusOK},
		{"no tenant", "", stubCounter{}, "event_name=x&from=2026-01-01T00:00:00Z&to=2026-01-02T00:00:00Z", http.StatusUnauthorized},
		{"missing to", "tenant1", stubCounter{}, "event_name=x&from=2026-01-01T00:00:00Z", http.StatusBadRequest},
		{"bad to", "tenant1", stubCounter{}, "event_name=x&from=2026-01-01T00:00:00Z&to=tomorrow", http.StatusBadRequest},
		{"empty window", "tenant1", stubCounter{}, "event_name=x&from=2026-01-01T00:00:00Z&to=2026-01-01T00:00:00Z", http.StatusBadRequest},
		{"db error", "tenant1", stubCounter{err: errors.New("down")}, "event_name=x&from=2026-01-01T00:00:00Z&to=2026-01-02T00:00:00Z", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(withTenant(tt.tenant))
			RegisterMetricRoutes(r, tt.counter)

			w := serve(r, http.MethodGet, "/metrics?"+tt.query, "")

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"event_name":"x","count":3}`, w.Body.String())
			}
		})
	}
}
