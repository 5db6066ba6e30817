// Package metrics counts gameplay events for the debug endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-crafting/internal/event"
)

// Collector turns dispatched events into prometheus series.
// It owns its registry so tests and multiple games do not collide.
type Collector struct {
	registry *prometheus.Registry

	itemsAdded     *prometheus.CounterVec
	itemsDiscarded prometheus.Counter
	crafts         *prometheus.CounterVec
	slotReturns    prometheus.Counter
	clears         prometheus.Counter
	resets         prometheus.Counter
	wins           prometheus.Counter
	pending        prometheus.Gauge
}

// NewCollector creates the metric set and registers it.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		itemsAdded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crafting_items_added_total",
			Help: "Resources added to the inventory, by resource",
		}, []string{"resource"}),
		itemsDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crafting_items_discarded_total",
			Help: "Inventory items dropped in the garbage",
		}),
		crafts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crafting_crafts_total",
			Help: "Committed crafts, by result",
		}, []string{"result"}),
		slotReturns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crafting_slot_returns_total",
			Help: "Times the crafting slot was returned to the inventory",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crafting_inventory_clears_total",
			Help: "Times the inventory was cleared",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crafting_resets_total",
			Help: "Full game resets",
		}),
		wins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crafting_wins_total",
			Help: "Times every recipe was discovered",
		}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "crafting_craft_pending",
			Help: "1 while a matched craft waits to commit",
		}),
	}
	c.registry.MustRegister(
		c.itemsAdded,
		c.itemsDiscarded,
		c.crafts,
		c.slotReturns,
		c.clears,
		c.resets,
		c.wins,
		c.pending,
	)
	return c
}

// Attach subscribes the collector to every event of d.
func (c *Collector) Attach(d *event.Dispatcher) {
	d.SubscribeAll(c)
}

// OnEvent обновляет метрики по событию игры.
func (c *Collector) OnEvent(e event.Event) {
	switch e.Type {
	case event.ItemAdded:
		if data, ok := e.Data.(event.ItemData); ok {
			c.itemsAdded.WithLabelValues(data.Name).Inc()
		}
	case event.ItemDiscarded:
		c.itemsDiscarded.Inc()
	case event.RecipeMatched:
		c.pending.Set(1)
	case event.CraftCommitted:
		c.pending.Set(0)
		if data, ok := e.Data.(event.CraftData); ok {
			c.crafts.WithLabelValues(data.Result).Inc()
		}
	case event.SlotReturned:
		c.slotReturns.Inc()
	case event.InventoryCleared:
		c.clears.Inc()
	case event.GameReset:
		c.pending.Set(0)
		c.resets.Inc()
	case event.GameWon:
		c.wins.Inc()
	}
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the metrics in the prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
