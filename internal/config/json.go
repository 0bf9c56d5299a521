package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type for timeout fields.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		ReportServerURI string   `json:"report_server_uri"`
		Username        string   `json:"username"`
		Password        string   `json:"password"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Cache struct {
		Path    string   `json:"path"`
		Folders []string `json:"folders"`
		TTL     Duration `json:"ttl"`
	} `json:"cache,omitempty"`

	Profiles struct {
		Path string `json:"path"`
	} `json:"profiles,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
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
		Server: Server{
			ReportServerURI: jsonCfg.Server.ReportServerURI,
			Username:        jsonCfg.Server.Username,
			Password:        jsonCfg.Server.Password,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Cache: Cache{
			Path:    jsonCfg.Cache.Path,
			Folders: jsonCfg.Cache.Folders,
			TTL:     time.Duration(jsonCfg.Cache.TTL),
		},
		Profiles: Profiles{
			Path: jsonCfg.Profiles.Path,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
