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

// StorePulse is a terminal admin dashboard for the commerce backend:
// orders, products, inventory, the dead letter queue, and store load,
// with optional 5-second auto-refresh.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/storepulse/storepulse/pkg/client"
	"github.com/storepulse/storepulse/pkg/config"
	"github.com/storepulse/storepulse/pkg/logger"
	"github.com/storepulse/storepulse/pkg/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to the JSON config file")
	apiURL := flag.String("api-url", "", "Backend base URL (overrides config)")
	refresh := flag.Duration("refresh", 0, "Auto-refresh interval (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if err := run(*configPath, *apiURL, *refresh, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "storepulse: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, apiURL string, refresh time.Duration, debug bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}

	if refresh > 0 {
		cfg.RefreshInterval = config.Duration(refresh)
	}

	logCfg := logger.Config{}
	if cfg.Logging != nil {
		logCfg = *cfg.Logging
	}

	if debug {
		logCfg.Debug = true
	}

	if err := logger.Init(logCfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log := logger.WithComponent("dashboard")

	api, err := client.New(client.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.RequestTimeout.Duration(),
		Logger:  logger.WithComponent("client"),
	})
	if err != nil {
		return fmt.Errorf("create backend client: %w", err)
	}

	log.Info().
		Str("api_base_url", cfg.APIBaseURL).
		Dur("refresh_interval", cfg.RefreshInterval.Duration()).
		Int("stores", len(cfg.Stores)).
		Msg("Starting dashboard")

	model := tui.New(api, cfg, log)
	program := tea.NewProgram(model, tea.WithAltScreen())
	model.Attach(program)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}

	return nil
}
