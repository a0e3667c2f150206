package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/PratikDhanave/fb-app-events-adapter/internal/facebook"
)

// Config contains runtime configuration required by the service.
type Config struct {
	DBURL      string
	ListenAddr string
	LogLevel   string
	APIKeys    map[string]string // apiKey -> tenantID

	// Destination holds the destination config every integration is created
	// with (limitedDataUse, dpoState, dpoCountry).
	Destination map[string]any
}

// Load reads values from the environment, and from a .env file when one is
// present. Environment variables win over .env.
// API_KEYS format: "tenant1:key1,tenant2:key2"
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // missing .env is fine

	v.AutomaticEnv()
	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LIMITED_DATA_USE", false)
	v.SetDefault("DPO_STATE", 0)
	v.SetDefault("DPO_COUNTRY", 0)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	dbURL := strings.TrimSpace(v.GetString("DB_URL"))
	if dbURL == "" {
		return Config{}, errors.New("DB_URL required")
	}

	apiKeys, err := parseAPIKeys(v.GetString("API_KEYS"))
	if err != nil {
		return Config{}, err
	}

	// Local dev fallback so the service runs out-of-the-box.
	if len(apiKeys) == 0 {
		apiKeys["tenant-key-123"] = "tenant1"
	}

	dpoState, err := cast.ToInt32E(v.Get("DPO_STATE"))
	if err != nil {
		return Config{}, errors.New("DPO_STATE must be an integer")
	}
	dpoCountry, err := cast.ToInt32E(v.Get("DPO_COUNTRY"))
	if err != nil {
		return Config{}, errors.New("DPO_COUNTRY must be an integer")
	}

	return Config{
		DBURL:      dbURL,
		ListenAddr: v.GetString("LISTEN_ADDR"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		APIKeys:    apiKeys,
		Destination: map[string]any{
			facebook.ConfigLimitedDataUse: v.GetBool("LIMITED_DATA_USE"),
			facebook.ConfigDPOState:       dpoState,
			facebook.ConfigDPOCountry:     dpoCountry,
		},
	}, nil
}

func parseAPIKeys(raw string) (map[string]string, error) {
	apiKeys := map[string]string{}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return apiKeys, nil
	}

	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts := strings.SplitN(p, ":", 2)
		if len(parts) != 2 {
			return nil, errors.New(`API_KEYS must be "tenant:key,tenant:key"`)
		}
		tenant := strings.TrimSpace(parts[0])
		key := strings.TrimSpace(parts[1])
		if tenant == "" || key == "" {
			return nil, errors.New(`API_KEYS must be "tenant:key,tenant:key"`)
		}
		apiKeys[key] = tenant
	}
	return apiKeys, nil
}
