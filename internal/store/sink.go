package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/PratikDhanave/fb-app-events-adapter/internal/facebook"
)

// writeTimeout bounds every sink write.
const writeTimeout = 5 * time.Second

// recorder is the part of PostgresStore the sinks write through.
type recorder interface {
	InsertAppEvent(ctx context.Context, tenantID string, ev AppEvent) error
	SetUserID(ctx context.Context, tenantID, userID string) error
	SetUserData(ctx context.Context, tenantID, field, value string) error
	ClearUserData(ctx context.Context, tenantID string) error
	SetDataProcessingOptions(ctx context.Context, tenantID string, options []string, country, state *int32) error
}

var (
	_ facebook.AppEventsSink = (*EventsSink)(nil)
	_ facebook.SettingsSink  = (*SettingsSink)(nil)
)

// EventsSink records App Events calls of one tenant. Write failures are
// logged, App Events calls do not report errors.
type EventsSink struct {
	rec    recorder
	tenant string
	log    *zap.Logger
}

// SettingsSink records data processing options of one tenant.
type SettingsSink struct {
	rec    recorder
	tenant string
}

// Sinks returns the App Events and settings sinks of a tenant.
func (p *PostgresStore) Sinks(tenantID string, log *zap.Logger) (*EventsSink, *SettingsSink) {
	return newSinks(p, tenantID, log)
}

func newSinks(rec recorder, tenantID string, log *zap.Logger) (*EventsSink, *SettingsSink) {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventsSink{rec: rec, tenant: tenantID, log: log.With(zap.String("tenant", tenantID))},
		&SettingsSink{rec: rec, tenant: tenantID}
}

func (s *EventsSink) write(op string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		s.log.Error("store: app events write failed", zap.String("op", op), zap.Error(err))
	}
}

func (s *EventsSink) SetUserID(userID string) {
	s.write("set_user_id", func(ctx context.Context) error {
		return s.rec.SetUserID(ctx, s.tenant, userID)
	})
}

func (s *EventsSink) SetUserData(value string, field facebook.UserDataType) {
	s.write("set_user_data", func(ctx context.Context) error {
		return s.rec.SetUserData(ctx, s.tenant, string(field), value)
	})
}

func (s *EventsSink) ClearUserData() {
	s.write("clear_user_data", func(ctx context.Context) error {
		return s.rec.ClearUserData(ctx, s.tenant)
	})
}

func (s *EventsSink) LogEvent(name facebook.EventName, params facebook.Parameters) {
	s.insert(AppEvent{Kind: KindEvent, Name: string(name), Parameters: toMap(params)})
}

func (s *EventsSink) LogEventWithValue(name facebook.EventName, valueToSum float64, params facebook.Parameters) {
	s.insert(AppEvent{Kind: KindEvent, Name: string(name), ValueToSum: &valueToSum, Parameters: toMap(params)})
}

func (s *EventsSink) LogPurchase(amount float64, currency string, params facebook.Parameters) {
	s.insert(AppEvent{
		Kind:       KindPurchase,
		Name:       string(facebook.EventPurchased),
		ValueToSum: &amount,
		Currency:   &currency,
		Parameters: toMap(params),
	})
}

// Instance returns the sink itself; it stands in for the native SDK handle.
func (s *EventsSink) Instance() any {
	return s
}

func (s *EventsSink) insert(ev AppEvent) {
	s.write("insert_app_event", func(ctx context.Context) error {
		return s.rec.InsertAppEvent(ctx, s.tenant, ev)
	})
}

func (s *SettingsSink) SetDataProcessingOptions(options []string) error {
	return s.save(options, nil, nil)
}

func (s *SettingsSink) SetDataProcessingOptionsForRegion(options []string, country, state int32) error {
	return s.save(options, &country, &state)
}

func (s *SettingsSink) save(options []string, country, state *int32) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := s.rec.SetDataProcessingOptions(ctx, s.tenant, options, country, state)
	return errors.Wrapf(err, "store: save data processing options for %s", s.tenant)
}

func toMap(params facebook.Parameters) map[string]any {
	m := make(map[string]any, len(params))
	for k, v := range params {
		m[string(k)] = v
	}
	return m
}
