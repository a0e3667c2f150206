package facebook

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Destination config keys.
const (
	ConfigLimitedDataUse = "limitedDataUse"
	ConfigDPOState       = "dpoState"
	ConfigDPOCountry     = "dpoCountry"
)

// LimitedDataUse is the data processing option enabling LDU.
const LimitedDataUse = "LDU"

// ComplianceConfig holds the data processing options of the destination.
// DPOState is 0 or 1000 and DPOCountry 0 or 1; anything else is reset to 0.
type ComplianceConfig struct {
	LimitedDataUse bool
	DPOState       int32
	DPOCountry     int32
}

// ParseComplianceConfig reads the compliance keys out of a destination
// config, falling back to zero values for missing or invalid entries.
func ParseComplianceConfig(config map[string]any) ComplianceConfig {
	var c ComplianceConfig
	if v, ok := config[ConfigLimitedDataUse].(bool); ok {
		c.LimitedDataUse = v
	}
	if v, ok := integral(config[ConfigDPOState]); ok && (v == 0 || v == 1000) {
		c.DPOState = int32(v)
	}
	if v, ok := integral(config[ConfigDPOCountry]); ok && (v == 0 || v == 1) {
		c.DPOCountry = int32(v)
	}
	return c
}

// integral accepts whole numbers only. Booleans and strings are rejected.
func integral(v any) (int64, bool) {
	if _, isBool := v.(bool); isBool || !isNumeric(v) {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

// Create applies the destination config and captures the native App Events
// instance. It may be called again; every call re-applies the config.
func (i *Integration) Create(config map[string]any) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.instance == nil {
		i.instance = i.events.Instance()
	}
	if err := i.configure(config, false); err != nil {
		return err
	}
	i.log.Debug("facebook: integration initialized")
	return nil
}

// Update re-applies the destination config.
func (i *Integration) Update(config map[string]any) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.configure(config, true); err != nil {
		return err
	}
	i.log.Debug("facebook: integration configuration updated")
	return nil
}

// Reset clears the user id and user data.
func (i *Integration) Reset() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.events.SetUserID("")
	i.events.ClearUserData()
	i.log.Debug("facebook: user data and id reset")
}

func (i *Integration) configure(config map[string]any, isUpdate bool) error {
	c := ParseComplianceConfig(config)

	var err error
	if c.LimitedDataUse {
		err = i.settings.SetDataProcessingOptionsForRegion([]string{LimitedDataUse}, c.DPOCountry, c.DPOState)
	} else {
		err = i.settings.SetDataProcessingOptions([]string{})
	}
	if err != nil {
		return errors.Wrap(err, "facebook: set data processing options")
	}

	i.compliance = c
	i.log.Debug("facebook: data processing options applied",
		zap.Bool("update", isUpdate),
		zap.Bool("limitedDataUse", c.LimitedDataUse),
		zap.Int32("dpoCountry", c.DPOCountry),
		zap.Int32("dpoState", c.DPOState),
	)
	return nil
}

// Compliance returns the last applied compliance config.
func (i *Integration) Compliance() ComplianceConfig {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.compliance
}
