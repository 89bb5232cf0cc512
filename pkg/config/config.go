/*
 * Copyright 2026 StorePulse Contributors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads StorePulse configuration from a JSON file with
// environment variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/storepulse/storepulse/pkg/logger"
)

const (
	defaultAPIBaseURL      = "http://localhost:8000/api/v1"
	defaultRefreshInterval = 5 * time.Second
	defaultRequestTimeout  = 15 * time.Second

	// EnvPrefix is prepended to all environment override names.
	EnvPrefix = "STOREPULSE_"
)

var (
	errAPIBaseURLRequired      = fmt.Errorf("api_base_url is required")
	errRefreshIntervalPositive = fmt.Errorf("refresh_interval must be positive")
	errAtLeastOneStore         = fmt.Errorf("at least one store must be configured")
	errInvalidDuration         = fmt.Errorf("invalid duration")
)

// Duration wraps time.Duration so JSON config can use either "5s" strings
// or raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Duration converts to the standard library type.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Store identifies one fulfillment hub known to the dashboard. The load
// view fetches metrics for every configured store.
type Store struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Config is the full dashboard configuration.
type Config struct {
	APIBaseURL      string         `json:"api_base_url"`
	RefreshInterval Duration       `json:"refresh_interval"`
	RequestTimeout  Duration       `json:"request_timeout"`
	Stores          []Store        `json:"stores,omitempty"`
	Logging         *logger.Config `json:"logging,omitempty"`
}

// Default returns the configuration used when no file is supplied: the
// local backend and the three seeded store hubs.
func Default() *Config {
	return &Config{
		APIBaseURL:      defaultAPIBaseURL,
		RefreshInterval: Duration(defaultRefreshInterval),
		RequestTimeout:  Duration(defaultRequestTimeout),
		Stores: []Store{
			{ID: 1, Name: "Downtown"},
			{ID: 2, Name: "Uptown"},
			{ID: 3, Name: "Suburbs"},
		},
	}
}

// Load reads the optional JSON config file over the defaults, then applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := (&FileLoader{}).Load(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides individual settings from STOREPULSE_* variables.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPrefix + "API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}

	if v := os.Getenv(EnvPrefix + "REFRESH_INTERVAL"); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			c.RefreshInterval = Duration(dur)
		}
	}

	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		if c.Logging == nil {
			c.Logging = &logger.Config{}
		}

		c.Logging.Level = v
	}
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errAPIBaseURLRequired
	}

	if _, err := url.Parse(c.APIBaseURL); err != nil {
		return fmt.Errorf("invalid api_base_url: %w", err)
	}

	if c.RefreshInterval <= 0 {
		return errRefreshIntervalPositive
	}

	if len(c.Stores) == 0 {
		return errAtLeastOneStore
	}

	return nil
}
