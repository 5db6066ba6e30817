package craft

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"go-crafting/internal/defs"
	"go-crafting/internal/store"
)

// Keys of the two persisted blobs.
const (
	KeyInventory = "inventory"
	KeyCrafted   = "crafted"
)

const persistTimeout = 2 * time.Second

// inventoryRecord is the persisted form of an inventory item.
// Instance ids are not stored; loading assigns fresh ones.
type inventoryRecord struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func encodeInventory(items []Item) ([]byte, error) {
	recs := make([]inventoryRecord, len(items))
	for i, it := range items {
		recs[i] = inventoryRecord{Name: it.Kind.Name, Color: it.Kind.Color}
	}
	return json.Marshal(recs)
}

func encodeCrafted(crafted []defs.CraftedKind) ([]byte, error) {
	if crafted == nil {
		crafted = []defs.CraftedKind{}
	}
	return json.Marshal(crafted)
}

// load seeds inventory and history from the store. Absent or malformed
// blobs leave the collection empty.
func (g *Game) load() {
	if blob, ok := g.loadBlob(KeyInventory); ok {
		var recs []inventoryRecord
		if err := json.Unmarshal(blob, &recs); err != nil {
			g.log.Warn("discarding malformed saved inventory", "error", err)
		} else {
			for _, rec := range recs {
				name := defs.Normalize(rec.Name)
				if name == "" {
					continue
				}
				kind, known := g.catalog.Resource(name)
				if !known {
					kind = defs.ResourceKind{Name: name, Color: rec.Color}
				}
				g.inventory = append(g.inventory, Item{ID: g.newID(), Kind: kind})
			}
		}
	}

	if blob, ok := g.loadBlob(KeyCrafted); ok {
		var crafted []defs.CraftedKind
		if err := json.Unmarshal(blob, &crafted); err != nil {
			g.log.Warn("discarding malformed saved history", "error", err)
		} else {
			for _, c := range crafted {
				c.Name = defs.Normalize(c.Name)
				if c.Name != "" {
					g.crafted = append(g.crafted, c)
				}
			}
		}
	}

	g.log.Info("game state loaded",
		"inventory", len(g.inventory),
		"crafted", len(g.crafted),
	)
}

func (g *Game) loadBlob(key string) ([]byte, bool) {
	if g.store == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	blob, err := g.store.Load(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		g.log.Warn("failed to load saved state", "key", key, "error", err)
		return nil, false
	}
	return blob, true
}

func (g *Game) saveInventory() {
	blob, err := encodeInventory(g.inventory)
	if err != nil {
		g.log.Error("failed to encode inventory", "error", err)
		return
	}
	g.save(KeyInventory, blob)
}

func (g *Game) saveCrafted() {
	blob, err := encodeCrafted(g.crafted)
	if err != nil {
		g.log.Error("failed to encode history", "error", err)
		return
	}
	g.save(KeyCrafted, blob)
}

func (g *Game) save(key string, blob []byte) {
	if g.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := g.store.Save(ctx, key, blob); err != nil {
		g.log.Warn("failed to persist state", "key", key, "error", err)
	}
}

func (g *Game) clearStore() {
	if g.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := g.store.Clear(ctx); err != nil {
		g.log.Warn("failed to erase saved state", "error", err)
	}
}

func (g *Game) newID() uuid.UUID {
	if g.idFunc != nil {
		return g.idFunc()
	}
	return uuid.New()
}
