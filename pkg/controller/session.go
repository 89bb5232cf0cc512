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

// Package controller implements the dashboard's view controller: owned
// session state, the per-view fetch pipeline, and the background
// refresh loop.
package controller

import "sync"

// ViewID identifies one dashboard view.
type ViewID string

const (
	ViewOverview  ViewID = "overview"
	ViewProducts  ViewID = "products"
	ViewInventory ViewID = "inventory"
	ViewTimeline  ViewID = "timeline"
	ViewOrders    ViewID = "orders"
	ViewDLQ       ViewID = "dlq"
	ViewStoreLoad ViewID = "store-load"
	ViewStoreMap  ViewID = "store-map"
)

// Views lists all views in navigation order.
var Views = []ViewID{
	ViewOverview,
	ViewProducts,
	ViewInventory,
	ViewTimeline,
	ViewOrders,
	ViewDLQ,
	ViewStoreLoad,
	ViewStoreMap,
}

const defaultStoreID = 1

// Session is the dashboard's only mutable state. All mutation goes
// through the named transitions below so the controller can be tested
// without a rendering surface.
//
// Every fetch pass carries a token issued at dispatch time. A completed
// pass is applied only if its view still matches the active view and
// its token is newer than the last applied one, which turns the
// stale-response race into a defined last-applicable-write rule.
type Session struct {
	mu              sync.Mutex
	activeView      ViewID
	selectedStoreID int
	pollingEnabled  bool
	nextToken       uint64
	lastApplied     uint64
}

// NewSession returns a session at its startup defaults: overview
// active, store 1 selected, polling off.
func NewSession() *Session {
	return &Session{
		activeView:      ViewOverview,
		selectedStoreID: defaultStoreID,
	}
}

func (s *Session) issueTokenLocked() uint64 {
	s.nextToken++
	return s.nextToken
}

// Navigate makes view the active view and issues a token for the
// non-silent fetch pass it triggers. Navigating to the already-active
// view issues a fresh token: every navigation is a full re-fetch.
func (s *Session) Navigate(view ViewID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activeView = view

	return s.issueTokenLocked()
}

// SelectStore records the inventory view's store selection and issues a
// token for the re-fetch. The id is not validated against the known
// store set.
func (s *Session) SelectStore(storeID int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedStoreID = storeID

	return s.issueTokenLocked()
}

// RefreshPass issues a token for a silent background pass targeting the
// view active right now, never a stale captured one.
func (s *Session) RefreshPass() (ViewID, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeView, s.issueTokenLocked()
}

// ShouldApply reports whether a completed pass may write to the screen,
// and records it as applied when so.
func (s *Session) ShouldApply(view ViewID, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if view != s.activeView {
		return false
	}

	if token <= s.lastApplied {
		return false
	}

	s.lastApplied = token

	return true
}

// SetPolling records the auto-refresh toggle and reports whether the
// value changed.
func (s *Session) SetPolling(enabled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pollingEnabled == enabled {
		return false
	}

	s.pollingEnabled = enabled

	return true
}

func (s *Session) ActiveView() ViewID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.activeView
}

func (s *Session) SelectedStoreID() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selectedStoreID
}

func (s *Session) PollingEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pollingEnabled
}
