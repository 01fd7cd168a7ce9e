package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so operators can keep a readable config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Shopify struct {
		APIVersion     string   `json:"api_version"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"shopify,omitempty"`

	Uploads struct {
		MaxFiles        int      `json:"max_files"`
		MaxFileSize     int64    `json:"max_file_size"`
		PollMaxAttempts int      `json:"poll_max_attempts"`
		PollBaseDelay   Duration `json:"poll_base_delay"`
		PollMaxDelay    Duration `json:"poll_max_delay"`
		PollGrowth      float64  `json:"poll_growth"`
	} `json:"uploads,omitempty"`

	RateLimits struct {
		OriginMax      int      `json:"origin_max"`
		OriginWindow   Duration `json:"origin_window"`
		IdentityMax    int      `json:"identity_max"`
		IdentityWindow Duration `json:"identity_window"`
	} `json:"rate_limits,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Shopify: Shopify{
			APIVersion:     jsonCfg.Shopify.APIVersion,
			RequestTimeout: time.Duration(jsonCfg.Shopify.RequestTimeout),
		},
		Uploads: Uploads{
			MaxFiles:        jsonCfg.Uploads.MaxFiles,
			MaxFileSize:     jsonCfg.Uploads.MaxFileSize,
			PollMaxAttempts: jsonCfg.Uploads.PollMaxAttempts,
			PollBaseDelay:   time.Duration(jsonCfg.Uploads.PollBaseDelay),
			PollMaxDelay:    time.Duration(jsonCfg.Uploads.PollMaxDelay),
			PollGrowth:      jsonCfg.Uploads.PollGrowth,
		},
		RateLimits: RateLimits{
			OriginMax:      jsonCfg.RateLimits.OriginMax,
			OriginWindow:   time.Duration(jsonCfg.RateLimits.OriginWindow),
			IdentityMax:    jsonCfg.RateLimits.IdentityMax,
			IdentityWindow: time.Duration(jsonCfg.RateLimits.IdentityWindow),
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
