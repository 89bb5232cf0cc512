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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storepulse/storepulse/pkg/logger"
)

type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (c *fakeClock) Now() time.Time {
	return time.Now()
}

func (c *fakeClock) Ticker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTicker{ch: make(chan time.Time)}
	c.tickers = append(c.tickers, t)

	return t
}

func (c *fakeClock) tickerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.tickers)
}

func (c *fakeClock) latest() *fakeTicker {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tickers[len(c.tickers)-1]
}

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *fakeTicker) Chan() <-chan time.Time {
	return t.ch
}

func (t *fakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
}

func (t *fakeTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stopped
}

// tick pushes one firing and waits for the loop to consume it.
func (t *fakeTicker) tick(tb testing.TB) {
	tb.Helper()

	select {
	case t.ch <- time.Now():
	case <-time.After(time.Second):
		tb.Fatal("refresher loop did not consume tick")
	}
}

func newTickCounter() (func(), *int32, *sync.Mutex) {
	var count int32

	var mu sync.Mutex

	return func() {
		mu.Lock()
		count++
		mu.Unlock()
	}, &count, &mu
}

func readCount(count *int32, mu *sync.Mutex) int32 {
	mu.Lock()
	defer mu.Unlock()

	return *count
}

func TestRefresher_TickInvokesCallback(t *testing.T) {
	clock := &fakeClock{}
	onTick, count, mu := newTickCounter()

	r := NewRefresher(clock, time.Second, onTick, logger.NewTestLogger())
	r.Start()

	defer r.Stop()

	clock.latest().tick(t)

	assert.Eventually(t, func() bool {
		return readCount(count, mu) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestRefresher_StartIsIdempotent(t *testing.T) {
	clock := &fakeClock{}
	onTick, _, _ := newTickCounter()

	r := NewRefresher(clock, time.Second, onTick, logger.NewTestLogger())

	r.Start()
	r.Start()

	defer r.Stop()

	// The first timer is torn down before the second is established.
	require.Equal(t, 2, clock.tickerCount())

	assert.Eventually(t, func() bool {
		return clock.tickers[0].isStopped()
	}, time.Second, 5*time.Millisecond)
	assert.False(t, clock.latest().isStopped())
	assert.True(t, r.Running())
}

func TestRefresher_StopWithoutStartIsNoop(t *testing.T) {
	r := NewRefresher(&fakeClock{}, time.Second, func() {}, logger.NewTestLogger())

	assert.NotPanics(t, r.Stop)
	assert.False(t, r.Running())
}

func TestRefresher_StopCancelsTimer(t *testing.T) {
	clock := &fakeClock{}

	r := NewRefresher(clock, time.Second, func() {}, logger.NewTestLogger())
	r.Start()
	r.Stop()

	assert.False(t, r.Running())

	assert.Eventually(t, func() bool {
		return clock.latest().isStopped()
	}, time.Second, 5*time.Millisecond)
}

func TestRefresher_InFlightGuardSkipsTicks(t *testing.T) {
	clock := &fakeClock{}
	onTick, count, mu := newTickCounter()

	r := NewRefresher(clock, time.Second, onTick, logger.NewTestLogger())
	r.Start()

	defer r.Stop()

	ticker := clock.latest()

	ticker.tick(t)

	assert.Eventually(t, func() bool {
		return readCount(count, mu) == 1
	}, time.Second, 5*time.Millisecond)

	// The pass has not settled, so further ticks are skipped.
	ticker.tick(t)
	ticker.tick(t)

	assert.Equal(t, int32(1), readCount(count, mu))

	// Settling opens the gate for exactly the next tick.
	r.Settle()
	ticker.tick(t)

	assert.Eventually(t, func() bool {
		return readCount(count, mu) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestNewRefresher_DefaultInterval(t *testing.T) {
	r := NewRefresher(nil, 0, func() {}, logger.NewTestLogger())

	assert.Equal(t, DefaultRefreshInterval, r.interval)
}
