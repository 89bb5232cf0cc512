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

package controller

import (
	"sync"
	"time"

	"github.com/storepulse/storepulse/pkg/logger"
)

// DefaultRefreshInterval matches the dashboard's 5-second auto-refresh
// period.
const DefaultRefreshInterval = 5 * time.Second

// Refresher drives the silent auto-refresh loop. Each tick invokes
// onTick exactly once, and further ticks are skipped until Settle is
// called — a slow silent pass is never overlapped by the next tick's.
//
// Start is idempotent: it always cancels any running timer before
// establishing a new one, so toggling polling on twice leaves exactly
// one timer. Stop without a running timer is a no-op.
type Refresher struct {
	mu       sync.Mutex
	clock    Clock
	interval time.Duration
	onTick   func()
	logger   logger.Logger

	stop     chan struct{}
	inFlight bool
}

func NewRefresher(clock Clock, interval time.Duration, onTick func(), log logger.Logger) *Refresher {
	if clock == nil {
		clock = RealClock{}
	}

	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &Refresher{
		clock:    clock,
		interval: interval,
		onTick:   onTick,
		logger:   log,
	}
}

func (r *Refresher) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()

	stop := make(chan struct{})
	r.stop = stop

	ticker := r.clock.Ticker(r.interval)

	r.logger.Info().Dur("interval", r.interval).Msg("Auto-refresh enabled")

	go r.loop(ticker, stop)
}

func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stop != nil {
		r.logger.Info().Msg("Auto-refresh disabled")
	}

	r.stopLocked()
}

func (r *Refresher) stopLocked() {
	if r.stop == nil {
		return
	}

	close(r.stop)
	r.stop = nil
	r.inFlight = false
}

// Running reports whether a timer is active.
func (r *Refresher) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stop != nil
}

// Settle marks the current silent pass as finished, allowing the next
// tick to fire a new one.
func (r *Refresher) Settle() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.inFlight = false
}

func (r *Refresher) loop(ticker Ticker, stop chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			r.fire()
		}
	}
}

func (r *Refresher) fire() {
	r.mu.Lock()

	if r.inFlight {
		r.mu.Unlock()
		r.logger.Debug().Msg("Refresh tick skipped, previous pass still in flight")

		return
	}

	r.inFlight = true
	onTick := r.onTick
	r.mu.Unlock()

	if onTick != nil {
		onTick()
	}
}
