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
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/storepulse/storepulse/pkg/config"
	"github.com/storepulse/storepulse/pkg/logger"
	"github.com/storepulse/storepulse/pkg/models"
)

const (
	countProbeLimit   = 1
	recentOrdersLimit = 5
	productPageLimit  = 20
	timelineLimit     = 20
	orderPageLimit    = 20
)

// API is the slice of the backend client the pipeline consumes.
type API interface {
	Orders(ctx context.Context, limit int) (*models.OrderPage, error)
	Products(ctx context.Context, limit int) (*models.ProductPage, error)
	Product(ctx context.Context, id int64) (*models.Product, error)
	StoreInventory(ctx context.Context, storeID int) (*models.InventoryPage, error)
	InventorySnapshots(ctx context.Context, limit int) (*models.SnapshotPage, error)
	FailedOrders(ctx context.Context, limit int) (*models.FailedOrderPage, error)
	StoreLoad(ctx context.Context, storeID int) (*models.StoreLoad, error)
	ReplayFailedOrder(ctx context.Context, id int64) error
}

// OverviewData is the assembled overview snapshot: three count probes
// plus the most recent orders.
type OverviewData struct {
	OrdersTotal   int
	ProductsTotal int
	DLQTotal      int
	Recent        []models.Order
}

// InventoryData is the inventory snapshot for the selected store.
type InventoryData struct {
	StoreID int
	Page    *models.InventoryPage
}

// StoreLoadStatus carries one store's load result. Load is nil when
// that store's request failed; the view renders a connecting
// placeholder for it without blocking the other stores.
type StoreLoadStatus struct {
	Store config.Store
	Load  *models.StoreLoad
}

// Snapshot is the result of one fetch pass. Exactly one of the per-view
// fields is populated, matching View.
type Snapshot struct {
	View  ViewID
	Token uint64

	Overview   *OverviewData
	Products   *models.ProductPage
	Inventory  *InventoryData
	Timeline   *models.SnapshotPage
	Orders     *models.OrderPage
	DLQ        *models.FailedOrderPage
	StoreLoads []StoreLoadStatus
}

// Pipeline fetches and assembles view snapshots. It holds no mutable
// state of its own; tokens and store selection come from the session at
// dispatch time.
type Pipeline struct {
	api    API
	stores []config.Store
	logger logger.Logger
}

func NewPipeline(api API, stores []config.Store, log logger.Logger) *Pipeline {
	return &Pipeline{
		api:    api,
		stores: stores,
		logger: log,
	}
}

// Run executes one fetch pass for view. storeID is only consulted for
// the inventory view. Requests within a pass run concurrently; for all
// views except store-load a single failed request fails the pass.
func (p *Pipeline) Run(ctx context.Context, view ViewID, storeID int, token uint64, silent bool) (*Snapshot, error) {
	passID := uuid.NewString()
	started := time.Now()

	p.logger.Debug().
		Str("pass_id", passID).
		Str("view", string(view)).
		Uint64("token", token).
		Bool("silent", silent).
		Msg("Fetch pass started")

	snap := &Snapshot{View: view, Token: token}

	var err error

	switch view {
	case ViewOverview:
		snap.Overview, err = p.fetchOverview(ctx)
	case ViewProducts:
		snap.Products, err = p.api.Products(ctx, productPageLimit)
	case ViewInventory:
		snap.Inventory, err = p.fetchInventory(ctx, storeID)
	case ViewTimeline:
		snap.Timeline, err = p.api.InventorySnapshots(ctx, timelineLimit)
	case ViewOrders:
		snap.Orders, err = p.api.Orders(ctx, orderPageLimit)
	case ViewDLQ:
		snap.DLQ, err = p.api.FailedOrders(ctx, 0)
	case ViewStoreLoad:
		snap.StoreLoads = p.fetchStoreLoads(ctx)
	case ViewStoreMap:
		// Static view, nothing to fetch.
	default:
		err = fmt.Errorf("unknown view %q", view)
	}

	if err != nil {
		p.logger.Warn().
			Str("pass_id", passID).
			Str("view", string(view)).
			Bool("silent", silent).
			Err(err).
			Msg("Fetch pass failed")

		return nil, err
	}

	p.logger.Debug().
		Str("pass_id", passID).
		Str("view", string(view)).
		Dur("elapsed", time.Since(started)).
		Msg("Fetch pass completed")

	return snap, nil
}

// fetchOverview runs the three count probes in parallel, then fetches
// the recent orders once the counts settled.
func (p *Pipeline) fetchOverview(ctx context.Context) (*OverviewData, error) {
	data := &OverviewData{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := p.api.Orders(gctx, countProbeLimit)
		if err != nil {
			return fmt.Errorf("orders count: %w", err)
		}

		data.OrdersTotal = page.Total

		return nil
	})

	g.Go(func() error {
		page, err := p.api.Products(gctx, countProbeLimit)
		if err != nil {
			return fmt.Errorf("products count: %w", err)
		}

		data.ProductsTotal = page.Total

		return nil
	})

	g.Go(func() error {
		page, err := p.api.FailedOrders(gctx, countProbeLimit)
		if err != nil {
			return fmt.Errorf("dlq count: %w", err)
		}

		data.DLQTotal = page.Total

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	recent, err := p.api.Orders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}

	data.Recent = recent.Items

	return data, nil
}

func (p *Pipeline) fetchInventory(ctx context.Context, storeID int) (*InventoryData, error) {
	page, err := p.api.StoreInventory(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("inventory for store %d: %w", storeID, err)
	}

	return &InventoryData{StoreID: storeID, Page: page}, nil
}

// fetchStoreLoads queries every configured store concurrently. Each
// store's failure is isolated: the entry keeps a nil Load and the
// remaining stores still render their data.
func (p *Pipeline) fetchStoreLoads(ctx context.Context) []StoreLoadStatus {
	statuses := make([]StoreLoadStatus, len(p.stores))

	var wg sync.WaitGroup

	for i, store := range p.stores {
		statuses[i].Store = store

		wg.Add(1)

		go func(i int, store config.Store) {
			defer wg.Done()

			load, err := p.api.StoreLoad(ctx, store.ID)
			if err != nil {
				p.logger.Warn().Int("store_id", store.ID).Err(err).Msg("Store load fetch failed")
				return
			}

			statuses[i].Load = load
		}(i, store)
	}

	wg.Wait()

	return statuses
}
