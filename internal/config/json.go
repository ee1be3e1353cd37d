package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	News struct {
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		Domains        string   `json:"domains"`
		PageSize       int      `json:"page_size"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"news,omitempty"`

	Location struct {
		ExportDir     string   `json:"export_dir"`
		BridgeTimeout Duration `json:"bridge_timeout"`
	} `json:"location,omitempty"`

	Workers struct {
		RateLimitCooldown Duration `json:"rate_limit_cooldown"`
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
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		News: News{
			BaseURL:        jsonCfg.News.BaseURL,
			APIKey:         jsonCfg.News.APIKey,
			Domains:        jsonCfg.News.Domains,
			PageSize:       jsonCfg.News.PageSize,
			RequestTimeout: time.Duration(jsonCfg.News.RequestTimeout),
		},
		Location: Location{
			ExportDir:     jsonCfg.Location.ExportDir,
			BridgeTimeout: time.Duration(jsonCfg.Location.BridgeTimeout),
		},
		Workers: Workers{
			RateLimitCooldown: time.Duration(jsonCfg.Workers.RateLimitCooldown),
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
