// Package craft holds the crafting state machine: the inventory, the
// crafting slot, the history of crafted items and the pending preview.
//
// All mutation goes through the methods of Game. The game is driven by a
// single goroutine (the ebiten Update loop or a CLI command) and is not
// safe for concurrent use.
package craft

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"go-crafting/internal/defs"
	"go-crafting/internal/event"
	"go-crafting/internal/sched"
	"go-crafting/internal/store"
)

// DefaultCraftDelay is how long a matched recipe is previewed before it commits.
const DefaultCraftDelay = 500 * time.Millisecond

// Item is one resource instance held by the player. Two items of the same
// kind are distinct; the inventory is keyed by ID.
type Item struct {
	ID   uuid.UUID
	Kind defs.ResourceKind
}

// Options configures a Game. The zero value is usable: default delay,
// nothing persisted, no events.
type Options struct {
	CraftDelay time.Duration
	Store      store.Store
	Events     *event.Dispatcher
	Logger     *slog.Logger
	// NewID generates instance ids. Defaults to uuid.New.
	NewID      func() uuid.UUID
}

// Game is the crafting state machine.
type Game struct {
	catalog *defs.Catalog
	store   store.Store
	events  *event.Dispatcher
	log     *slog.Logger
	idFunc  func() uuid.UUID
	delay   time.Duration
	queue   *sched.Queue

	inventory []Item
	slot      []Item
	crafted   []defs.CraftedKind
	preview   *defs.CraftedKind
	pending   sched.Token // 0, если коммит не ожидается
	won       bool
}

// New creates a game over cat and seeds it from opts.Store.
func New(cat *defs.Catalog, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	delay := opts.CraftDelay
	if delay <= 0 {
		delay = DefaultCraftDelay
	}
	g := &Game{
		catalog: cat,
		store:   opts.Store,
		events:  opts.Events,
		log:     logger.With("component", "craft"),
		idFunc:  opts.NewID,
		delay:   delay,
		queue:   sched.NewQueue(),
	}
	g.load()
	g.won = g.IsWon()
	return g
}

// Catalog returns the catalog the game plays with.
func (g *Game) Catalog() *defs.Catalog { return g.catalog }

// AddToInventory appends a new instance of kind to the inventory.
func (g *Game) AddToInventory(kind defs.ResourceKind) Item {
	kind.Name = defs.Normalize(kind.Name)
	item := Item{ID: g.newID(), Kind: kind}
	g.inventory = append(g.inventory, item)
	g.saveInventory()

	g.events.Dispatch(event.Event{
		Type: event.ItemAdded,
		Data: event.ItemData{ItemID: item.ID.String(), Name: kind.Name},
	})
	return item
}

// AddResource adds one instance of the catalog resource called name.
func (g *Game) AddResource(name string) (Item, bool) {
	kind, ok := g.catalog.Resource(name)
	if !ok {
		g.log.Debug("unknown resource", "name", name)
		return Item{}, false
	}
	return g.AddToInventory(kind), true
}

// MoveToCraftingSlot moves the inventory item with id into the crafting
// slot and re-evaluates recipes. It reports false, changing nothing, when
// no inventory item has id or while a matched craft is waiting to commit.
func (g *Game) MoveToCraftingSlot(id uuid.UUID) bool {
	if g.pending != 0 {
		g.log.Debug("slot locked until craft commits", "item", id)
		return false
	}
	idx := g.indexOf(id)
	if idx < 0 {
		return false
	}

	item := g.inventory[idx]
	g.inventory = slices.Delete(g.inventory, idx, idx+1)
	g.slot = append(g.slot, item)
	g.saveInventory()

	g.events.Dispatch(event.Event{
		Type: event.ItemMoved,
		Data: event.ItemData{ItemID: item.ID.String(), Name: item.Kind.Name},
	})

	g.matchSlot()
	return true
}

// DiscardItem removes one inventory item (the garbage drop zone).
func (g *Game) DiscardItem(id uuid.UUID) bool {
	idx := g.indexOf(id)
	if idx < 0 {
		return false
	}
	item := g.inventory[idx]
	g.inventory = slices.Delete(g.inventory, idx, idx+1)
	g.saveInventory()

	g.events.Dispatch(event.Event{
		Type: event.ItemDiscarded,
		Data: event.ItemData{ItemID: item.ID.String(), Name: item.Kind.Name},
	})
	return true
}

// matchSlot picks the first recipe whose ingredients are all in the slot
// and schedules its commit.
func (g *Game) matchSlot() {
	names := make([]string, len(g.slot))
	for i, it := range g.slot {
		names[i] = it.Kind.Name
	}
	rec, ok := g.catalog.FirstMatch(defs.NameSet(names...))
	if !ok {
		g.preview = nil
		return
	}

	result := rec.Result
	g.preview = &result

	var tok sched.Token
	tok = g.queue.After(g.delay, func() { g.commit(tok, rec) })
	g.pending = tok

	g.log.Debug("recipe matched", "result", rec.Result.Name, "slot", len(g.slot))
	g.events.Dispatch(event.Event{
		Type: event.RecipeMatched,
		Data: event.CraftData{Result: rec.Result.Name, Ingredients: rec.Ingredients},
	})
}

// commit finishes a matched craft. A token that is no longer the pending
// one belongs to a craft cancelled by ResetGame and is ignored.
func (g *Game) commit(tok sched.Token, rec defs.Recipe) {
	if tok != g.pending {
		g.log.Debug("dropping stale craft", "result", rec.Result.Name)
		return
	}
	g.pending = 0

	if surplus := len(g.slot) - len(rec.Ingredients); surplus > 0 {
		g.log.Debug("surplus items consumed by craft", "result", rec.Result.Name, "surplus", surplus)
	}
	g.crafted = append(g.crafted, rec.Result)
	g.slot = nil
	g.preview = nil
	g.saveCrafted()

	g.log.Info("item crafted", "result", rec.Result.Name, "crafted", len(g.crafted))
	g.events.Dispatch(event.Event{
		Type: event.CraftCommitted,
		Data: event.CraftData{Result: rec.Result.Name, Ingredients: rec.Ingredients},
	})

	if !g.won && g.IsWon() {
		g.won = true
		g.log.Info("all recipes discovered")
		g.events.Dispatch(event.Event{Type: event.GameWon})
	}
}

// ReturnSlotToInventory moves every slot item back to the inventory.
// It is rejected (false) while a matched craft is pending; an empty slot
// is a successful no-op.
func (g *Game) ReturnSlotToInventory() bool {
	if g.pending != 0 {
		g.log.Debug("return rejected: craft pending")
		return false
	}
	g.preview = nil
	if len(g.slot) == 0 {
		return true
	}

	n := len(g.slot)
	g.inventory = append(g.inventory, g.slot...)
	g.slot = nil
	g.saveInventory()

	g.events.Dispatch(event.Event{Type: event.SlotReturned, Data: event.CountData{Count: n}})
	return true
}

// ClearInventory empties the inventory. The slot and history are untouched.
func (g *Game) ClearInventory() {
	n := len(g.inventory)
	g.inventory = nil
	g.saveInventory()

	g.events.Dispatch(event.Event{Type: event.InventoryCleared, Data: event.CountData{Count: n}})
}

// ResetGame empties everything, cancels a pending craft and erases the
// saved state.
func (g *Game) ResetGame() {
	if g.pending != 0 {
		g.queue.Cancel(g.pending)
		g.pending = 0
	}
	g.inventory = nil
	g.slot = nil
	g.crafted = nil
	g.preview = nil
	g.won = false
	g.clearStore()

	g.log.Info("game reset")
	g.events.Dispatch(event.Event{Type: event.GameReset})
}

// Update advances game time by dt seconds, committing due crafts.
func (g *Game) Update(dt float64) {
	g.queue.Advance(dt)
}

// ComputeDiscoverable returns the recipes whose ingredients are all held
// in the inventory, one of each being enough.
func (g *Game) ComputeDiscoverable() []defs.Recipe {
	names := make([]string, len(g.inventory))
	for i, it := range g.inventory {
		names[i] = it.Kind.Name
	}
	return g.catalog.Matching(defs.NameSet(names...))
}

// IsWon reports whether every recipe result has been crafted.
func (g *Game) IsWon() bool {
	for _, r := range g.catalog.Recipes() {
		if !g.IsCrafted(r.Result.Name) {
			return false
		}
	}
	return true
}

// IsCrafted reports whether name appears in the crafted history.
func (g *Game) IsCrafted(name string) bool {
	name = defs.Normalize(name)
	for _, c := range g.crafted {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Phase returns the current slot lifecycle phase.
func (g *Game) Phase() Phase {
	switch {
	case g.pending != 0:
		return PhaseMatched
	case len(g.slot) > 0:
		return PhaseAssembling
	default:
		return PhaseIdle
	}
}

// Inventory returns a copy of the inventory in insertion order.
func (g *Game) Inventory() []Item { return slices.Clone(g.inventory) }

// Slot returns a copy of the crafting slot contents.
func (g *Game) Slot() []Item { return slices.Clone(g.slot) }

// Crafted returns a copy of the crafted history, oldest first.
func (g *Game) Crafted() []defs.CraftedKind { return slices.Clone(g.crafted) }

// Preview returns the result awaiting commit, if any.
func (g *Game) Preview() (defs.CraftedKind, bool) {
	if g.preview == nil {
		return defs.CraftedKind{}, false
	}
	return *g.preview, true
}

// Item looks up an inventory item by id.
func (g *Game) Item(id uuid.UUID) (Item, bool) {
	idx := g.indexOf(id)
	if idx < 0 {
		return Item{}, false
	}
	return g.inventory[idx], true
}

func (g *Game) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(g.inventory, func(it Item) bool { return it.ID == id })
}
