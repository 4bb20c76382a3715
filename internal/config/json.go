package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		Mode     string `json:"mode"`
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
	} `json:"auth,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		AllowedOrigin   string   `json:"allowed_origin"`
		CookieDomain    string   `json:"cookie_domain"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		UserServiceAddress    string   `json:"user_service_address"`
		ProductServiceAddress string   `json:"product_service_address"`
		RequestTimeout        Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Mode:     jsonCfg.App.Mode,
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			TokenSignKey: jsonCfg.Auth.TokenSignKey,
			TokenIssuer:  jsonCfg.Auth.TokenIssuer,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			AllowedOrigin:   jsonCfg.Server.AllowedOrigin,
			CookieDomain:    jsonCfg.Server.CookieDomain,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			UserServiceAddress:    jsonCfg.Adapter.UserServiceAddress,
			ProductServiceAddress: jsonCfg.Adapter.ProductServiceAddress,
			RequestTimeout:        time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
