// Package facebook translates host analytics calls (identify, track, screen)
// into Facebook App Events calls.
//
// An Integration resolves event names against the standard App Events names,
// maps well-known ecommerce properties onto standard parameters, extracts
// amounts to sum and issues a single sink call per event. It also owns the
// Limited Data Use settings of the destination.
package facebook

import (
	"sync"

	"go.uber.org/zap"
)

// Key is the destination key the host client registers the integration under.
const Key = "Facebook App Events"

const (
	// maxEventNameLength is the App Events limit on event names.
	maxEventNameLength = 40
	// maxScreenNameLength leaves room for "Viewed " and " Screen".
	maxScreenNameLength = 26
)

// Integration is the Facebook App Events destination. All entry points are
// serialised, so an Integration may be shared between goroutines.
type Integration struct {
	mu sync.Mutex

	events   AppEventsSink
	settings SettingsSink
	log      *zap.Logger

	instance   any
	compliance ComplianceConfig
}

// Option configures an Integration.
type Option func(*Integration)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(i *Integration) {
		if l != nil {
			i.log = l
		}
	}
}

// New returns an Integration writing to the given sinks.
func New(events AppEventsSink, settings SettingsSink, opts ...Option) *Integration {
	i := &Integration{
		events:   events,
		settings: settings,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// DestinationInstance returns the native App Events handle, or nil before
// the first Create.
func (i *Integration) DestinationInstance() any {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.instance
}

// Identify forwards the user id and known user traits. An empty user id
// counts as absent and leaves the current one in place.
func (i *Integration) Identify(event IdentifyEvent) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if event.UserID != "" {
		i.events.SetUserID(event.UserID)
		i.log.Debug("facebook: set user id")
	}

	if event.Traits == nil {
		i.log.Debug("facebook: identify without traits, skipping user data")
		return
	}

	i.setUserData(event.Traits, "email", UserDataEmail)
	i.setUserData(event.Traits, "firstName", UserDataFirstName)
	i.setUserData(event.Traits, "lastName", UserDataLastName)
	i.setUserData(event.Traits, "phone", UserDataPhone)
	i.setUserData(event.Traits, "birthday", UserDataDateOfBirth)
	i.setUserData(event.Traits, "gender", UserDataGender)

	if address, ok := event.Traits["address"].(map[string]any); ok {
		i.setUserData(address, "city", UserDataCity)
		i.setUserData(address, "state", UserDataState)
		i.setUserData(address, "postalcode", UserDataZip)
		i.setUserData(address, "country", UserDataCountry)
	}

	i.log.Debug("facebook: identify processed")
}

func (i *Integration) setUserData(traits map[string]any, key string, field UserDataType) {
	if v, ok := traits[key].(string); ok {
		i.events.SetUserData(v, field)
	}
}

// Track logs a track event, as a purchase when it is a completed order with
// revenue.
func (i *Integration) Track(event TrackEvent) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if event.Event == "" {
		i.log.Debug("facebook: track event without name dropped")
		return
	}

	name := ResolveEventName(truncate(event.Event, maxEventNameLength))
	properties := event.Properties
	params := projectProperties(properties, true)

	policy := policyFor(name)
	if policy == policyCustom {
		i.events.LogEvent(name, params)
		i.log.Debug("facebook: logged custom event", zap.String("event", string(name)), zap.Int("params", len(params)))
		return
	}

	applyStandardFields(properties, params, name)

	key := policy.valueKey()
	if key == "" {
		i.events.LogEvent(name, params)
		i.log.Debug("facebook: logged event", zap.String("event", string(name)), zap.Int("params", len(params)))
		return
	}

	amount, ok := ValueToSum(properties, key)
	switch {
	case !ok:
		i.events.LogEvent(name, params)
		i.log.Debug("facebook: logged event", zap.String("event", string(name)), zap.Int("params", len(params)))
	case policy == policyPurchase:
		currency := Currency(properties, ParamCurrency)
		i.events.LogPurchase(amount, currency, params)
		i.log.Debug("facebook: logged purchase", zap.Float64("amount", amount), zap.String("currency", currency))
	default:
		i.events.LogEventWithValue(name, amount, params)
		i.log.Debug("facebook: logged event", zap.String("event", string(name)), zap.String("valueKey", key), zap.Float64("valueToSum", amount))
	}
}

// Screen logs a screen view as "Viewed <screen> Screen". Screen properties
// are not filtered.
func (i *Integration) Screen(event ScreenEvent) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if event.Name == "" {
		i.log.Debug("facebook: screen event without name dropped")
		return
	}

	name := EventName("Viewed " + truncate(event.Name, maxScreenNameLength) + " Screen")
	params := projectProperties(event.Properties, false)

	i.events.LogEvent(name, params)
	i.log.Debug("facebook: logged screen view", zap.String("event", string(name)), zap.Int("params", len(params)))
}
