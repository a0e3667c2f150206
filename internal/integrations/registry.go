// Package integrations keeps one Facebook integration per tenant.
package integrations

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/PratikDhanave/fb-app-events-adapter/internal/facebook"
)

// SinkFactory returns the sinks an integration of tenantID writes to.
type SinkFactory func(tenantID string) (facebook.AppEventsSink, facebook.SettingsSink)

// Registry lazily creates integrations. Each one is created with the same
// destination config; a failed creation is not cached, so the next call
// retries it. Creations run outside the registry lock, one at a time per
// tenant.
type Registry struct {
	mu           sync.Mutex
	integrations map[string]*facebook.Integration
	creating     singleflight.Group

	sinks  SinkFactory
	config map[string]any
	log    *zap.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(sinks SinkFactory, config map[string]any, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		integrations: map[string]*facebook.Integration{},
		sinks:        sinks,
		config:       config,
		log:          log,
	}
}

// For returns the integration of tenantID, creating it on first use.
func (r *Registry) For(tenantID string) (*facebook.Integration, error) {
	if i, ok := r.lookup(tenantID); ok {
		return i, nil
	}

	v, err, _ := r.creating.Do(tenantID, func() (any, error) {
		if i, ok := r.lookup(tenantID); ok {
			return i, nil
		}
		i, err := r.create(tenantID)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.integrations[tenantID] = i
		r.mu.Unlock()
		return i, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*facebook.Integration), nil
}

func (r *Registry) lookup(tenantID string) (*facebook.Integration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.integrations[tenantID]
	return i, ok
}

func (r *Registry) create(tenantID string) (*facebook.Integration, error) {
	events, settings := r.sinks(tenantID)
	log := r.log.With(zap.String("tenant", tenantID), zap.String("destination", facebook.Key))
	i := facebook.New(events, settings, facebook.WithLogger(log))
	if err := i.Create(r.config); err != nil {
		return nil, errors.Wrapf(err, "integrations: create for tenant %s", tenantID)
	}
	log.Info("integration created")
	return i, nil
}

// Len returns the number of live integrations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.integrations)
}
