package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// Kinds of recorded App Events calls.
const (
	KindEvent    = "event"
	KindPurchase = "purchase"
)

// AppEvent is one recorded App Events call.
type AppEvent struct {
	Kind       string
	Name       string
	ValueToSum *float64
	Currency   *string
	Parameters map[string]any
}

// PostgresStore records App Events calls and settings per tenant.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, errors.Wrap(err, "store: open pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "store: ping")
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.pool.Exec(context.Background(), schemaSQL)
	return errors.Wrap(err, "store: apply schema")
}

// Ping is used by readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// InsertAppEvent records a logged event or purchase.
func (p *PostgresStore) InsertAppEvent(ctx context.Context, tenantID string, ev AppEvent) error {
	if tenantID == "" || ev.Name == "" {
		return errors.New("tenantID/eventName required")
	}

	params := ev.Parameters
	if params == nil {
		params = map[string]any{}
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return err
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO app_events(id, tenant_id, kind, event_name, value_to_sum, currency, parameters)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, uuid.New().String(), tenantID, ev.Kind, ev.Name, ev.ValueToSum, ev.Currency, paramsJSON)
	return err
}

// SetUserID stores the tenant's current user id. An empty id clears it.
func (p *PostgresStore) SetUserID(ctx context.Context, tenantID, userID string) error {
	var id *string
	if userID != "" {
		id = &userID
	}
	_, err := p.pool.Exec(ctx, `
		INSERT INTO app_user_ids(tenant_id, user_id, updated_at)
		VALUES ($1,$2,now())
		ON CONFLICT (tenant_id) DO UPDATE SET user_id = EXCLUDED.user_id, updated_at = now()
	`, tenantID, id)
	return err
}

// SetUserData stores one user data field, replacing any previous value.
func (p *PostgresStore) SetUserData(ctx context.Context, tenantID, field, value string) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO app_user_data(tenant_id, field, value, updated_at)
		VALUES ($1,$2,$3,now())
		ON CONFLICT (tenant_id, field) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, tenantID, field, value)
	return err
}

// ClearUserData removes every user data field of the tenant.
func (p *PostgresStore) ClearUserData(ctx context.Context, tenantID string) error {
	_, err := p.pool.Exec(ctx, `DELETE FROM app_user_data WHERE tenant_id=$1`, tenantID)
	return err
}

// SetDataProcessingOptions stores the tenant's data processing options.
// country and state are nil when no region applies.
func (p *PostgresStore) SetDataProcessingOptions(ctx context.Context, tenantID string, options []string, country, state *int32) error {
	if options == nil {
		options = []string{}
	}
	_, err := p.pool.Exec(ctx, `
		INSERT INTO data_processing_options(tenant_id, options, country, state, updated_at)
		VALUES ($1,$2,$3,$4,now())
		ON CONFLICT (tenant_id) DO UPDATE
		SET options = EXCLUDED.options, country = EXCLUDED.country, state = EXCLUDED.state, updated_at = now()
	`, tenantID, options, country, state)
	return err
}

// CountAppEvents returns the number of App Events calls recorded for
// (tenantID, eventName) in the time window [from,to). Purchases are recorded
// as fb_mobile_purchase.
func (p *PostgresStore) CountAppEvents(
	ctx context.Context,
	tenantID string,
	eventName string,
	from time.Time,
	to time.Time,
) (int64, error) {

	var count int64
	err := p.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM app_events
		WHERE tenant_id=$1
		  AND event_name=$2
		  AND ts >= $3
		  AND ts <  $4
	`, tenantID, eventName, from, to).Scan(&count)

	return count, err
}
