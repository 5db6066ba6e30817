package craft

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-crafting/internal/defs"
	"go-crafting/internal/event"
	"go-crafting/internal/store"
	"go-crafting/internal/store/memory"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGame(t *testing.T, st store.Store) (*Game, *[]event.Event) {
	t.Helper()
	var got []event.Event
	d := event.NewDispatcher()
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { got = append(got, e) }))

	g := New(defs.DefaultCatalog(), Options{
		CraftDelay: DefaultCraftDelay,
		Store:      st,
		Events:     d,
		Logger:     quietLogger(),
	})
	return g, &got
}

func add(t *testing.T, g *Game, name string) Item {
	t.Helper()
	it, ok := g.AddResource(name)
	require.True(t, ok, name)
	return it
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Kind.Name
	}
	return out
}

func craftedNames(crafted []defs.CraftedKind) []string {
	out := make([]string, len(crafted))
	for i, c := range crafted {
		out[i] = c.Name
	}
	return out
}

func eventTypes(events []event.Event) []event.EventType {
	out := make([]event.EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func TestAddToInventory(t *testing.T) {
	g, _ := newTestGame(t, nil)
	cat := g.Catalog()

	kinds := []string{"Lemn", "Lemn", "Aur", "Oțel"}
	for _, name := range kinds {
		kind, ok := cat.Resource(name)
		require.True(t, ok)
		g.AddToInventory(kind)
	}

	inv := g.Inventory()
	require.Len(t, inv, len(kinds))
	assert.Equal(t, kinds, names(inv))
	assert.NotEqual(t, inv[0].ID, inv[1].ID, "each instance gets its own id")
}

func TestAddResourceUnknown(t *testing.T) {
	g, _ := newTestGame(t, nil)
	_, ok := g.AddResource("Diamant")
	assert.False(t, ok)
	assert.Empty(t, g.Inventory())
}

func TestMoveUnknownItemIsNoop(t *testing.T) {
	g, _ := newTestGame(t, nil)
	add(t, g, "Lemn")
	before := g.Inventory()

	assert.False(t, g.MoveToCraftingSlot(uuid.New()))
	assert.Equal(t, before, g.Inventory())
	assert.Empty(t, g.Slot())
	assert.Equal(t, PhaseIdle, g.Phase())
}

func TestMoveRemovesExactlyOneInstance(t *testing.T) {
	g, _ := newTestGame(t, nil)
	first := add(t, g, "Lemn")
	second := add(t, g, "Lemn")

	require.True(t, g.MoveToCraftingSlot(second.ID))

	inv := g.Inventory()
	require.Len(t, inv, 1)
	assert.Equal(t, first.ID, inv[0].ID)
	assert.Equal(t, []Item{second}, g.Slot())
	assert.Equal(t, PhaseAssembling, g.Phase())

	// the same instance cannot be moved twice
	assert.False(t, g.MoveToCraftingSlot(second.ID))
	assert.Len(t, g.Slot(), 1)
}

func TestCraftAxe(t *testing.T) {
	g, events := newTestGame(t, nil)
	wood := add(t, g, "Lemn")
	stone := add(t, g, "Piatră")

	require.True(t, g.MoveToCraftingSlot(wood.ID))
	_, ok := g.Preview()
	assert.False(t, ok)

	require.True(t, g.MoveToCraftingSlot(stone.ID))
	assert.Equal(t, PhaseMatched, g.Phase())
	preview, ok := g.Preview()
	require.True(t, ok)
	assert.Equal(t, "Topor", preview.Name)
	assert.Empty(t, g.Crafted(), "nothing is committed before the delay")

	g.Update(0.25)
	assert.Equal(t, PhaseMatched, g.Phase())

	g.Update(0.25)
	assert.Equal(t, PhaseIdle, g.Phase())
	assert.Equal(t, []string{"Topor"}, craftedNames(g.Crafted()))
	assert.Empty(t, g.Slot())
	_, ok = g.Preview()
	assert.False(t, ok)

	g.Update(5)
	assert.Equal(t, []string{"Topor"}, craftedNames(g.Crafted()), "commit runs once")

	assert.Equal(t, []event.EventType{
		event.ItemAdded, event.ItemAdded,
		event.ItemMoved,
		event.ItemMoved, event.RecipeMatched,
		event.CraftCommitted,
	}, eventTypes(*events))
}

func TestMatchIgnoresSurplusAndUsesCatalogOrder(t *testing.T) {
	g, _ := newTestGame(t, nil)
	cloth := add(t, g, "Pânză")
	gold := add(t, g, "Aur")
	wood := add(t, g, "Lemn")

	require.True(t, g.MoveToCraftingSlot(gold.ID))
	require.True(t, g.MoveToCraftingSlot(cloth.ID))
	assert.Equal(t, PhaseAssembling, g.Phase())

	// Aur is surplus for Pătură; it does not block the match.
	require.True(t, g.MoveToCraftingSlot(wood.ID))
	preview, ok := g.Preview()
	require.True(t, ok)
	assert.Equal(t, "Pătură", preview.Name)

	g.Update(1)
	assert.Equal(t, []string{"Pătură"}, craftedNames(g.Crafted()))
	assert.Empty(t, g.Slot(), "surplus items are consumed with the slot")
}

func TestSlotLockedWhileMatched(t *testing.T) {
	g, _ := newTestGame(t, nil)
	wood := add(t, g, "Lemn")
	stone := add(t, g, "Piatră")
	extra := add(t, g, "Fier")

	require.True(t, g.MoveToCraftingSlot(wood.ID))
	require.True(t, g.MoveToCraftingSlot(stone.ID))
	require.Equal(t, PhaseMatched, g.Phase())

	assert.False(t, g.MoveToCraftingSlot(extra.ID))
	assert.False(t, g.ReturnSlotToInventory())
	assert.Equal(t, []string{"Fier"}, names(g.Inventory()))
	assert.Len(t, g.Slot(), 2)

	g.Update(1)
	assert.True(t, g.MoveToCraftingSlot(extra.ID))
}

func TestReturnSlotToInventory(t *testing.T) {
	g, events := newTestGame(t, nil)
	wood := add(t, g, "Lemn")
	gold := add(t, g, "Aur")
	require.True(t, g.MoveToCraftingSlot(wood.ID))
	require.True(t, g.MoveToCraftingSlot(gold.ID))

	require.True(t, g.ReturnSlotToInventory())
	assert.Empty(t, g.Slot())
	assert.Equal(t, PhaseIdle, g.Phase())
	assert.ElementsMatch(t, []uuid.UUID{wood.ID, gold.ID}, []uuid.UUID{g.Inventory()[0].ID, g.Inventory()[1].ID})
	assert.Equal(t, event.SlotReturned, (*events)[len(*events)-1].Type)

	// empty slot: accepted, nothing happens
	n := len(*events)
	assert.True(t, g.ReturnSlotToInventory())
	assert.Len(t, *events, n)
}

func TestComputeDiscoverable(t *testing.T) {
	g, _ := newTestGame(t, nil)
	add(t, g, "Fier")
	add(t, g, "Oțel")

	found := g.ComputeDiscoverable()
	require.Len(t, found, 1)
	assert.Equal(t, "Sabie", found[0].Result.Name)

	// quantity does not matter, one of each is enough
	add(t, g, "Fier")
	assert.Len(t, g.ComputeDiscoverable(), 1)

	assert.Len(t, g.Inventory(), 3, "discovery does not mutate state")
}

func TestComputeDiscoverableEmpty(t *testing.T) {
	g, _ := newTestGame(t, nil)
	add(t, g, "Lemn")
	assert.Empty(t, g.ComputeDiscoverable())
}

func craftRecipe(t *testing.T, g *Game, ingredients ...string) {
	t.Helper()
	for _, name := range ingredients {
		it := add(t, g, name)
		require.True(t, g.MoveToCraftingSlot(it.ID), name)
	}
	require.Equal(t, PhaseMatched, g.Phase())
	g.Update(g.delay.Seconds())
	require.Equal(t, PhaseIdle, g.Phase())
}

func TestIsWon(t *testing.T) {
	g, events := newTestGame(t, nil)
	assert.False(t, g.IsWon())

	craftRecipe(t, g, "Lemn", "Piatră")
	craftRecipe(t, g, "Lemn", "Piatră") // duplicates do not count twice
	craftRecipe(t, g, "Fier", "Oțel")
	craftRecipe(t, g, "Frunză", "Pânză", "Aur")
	assert.False(t, g.IsWon())

	craftRecipe(t, g, "Lemn", "Pânză")
	assert.True(t, g.IsWon())

	won := 0
	for _, e := range *events {
		if e.Type == event.GameWon {
			won++
		}
	}
	assert.Equal(t, 1, won)

	// crafting again after winning does not announce a second win
	craftRecipe(t, g, "Fier", "Oțel")
	assert.Equal(t, event.CraftCommitted, (*events)[len(*events)-1].Type)
}

func TestClearInventoryIdempotent(t *testing.T) {
	g, _ := newTestGame(t, nil)
	add(t, g, "Lemn")
	wood := add(t, g, "Lemn")
	require.True(t, g.MoveToCraftingSlot(wood.ID))

	g.ClearInventory()
	assert.Empty(t, g.Inventory())
	g.ClearInventory()
	assert.Empty(t, g.Inventory())

	assert.Len(t, g.Slot(), 1, "slot untouched")
}

func TestDiscardItem(t *testing.T) {
	g, _ := newTestGame(t, nil)
	keep := add(t, g, "Aur")
	drop := add(t, g, "Aur")

	assert.True(t, g.DiscardItem(drop.ID))
	assert.False(t, g.DiscardItem(drop.ID))
	assert.Equal(t, []Item{keep}, g.Inventory())
}

func TestResetCancelsPendingCraft(t *testing.T) {
	st := memory.New()
	g, _ := newTestGame(t, st)
	wood := add(t, g, "Lemn")
	stone := add(t, g, "Piatră")
	require.True(t, g.MoveToCraftingSlot(wood.ID))
	require.True(t, g.MoveToCraftingSlot(stone.ID))
	require.Equal(t, PhaseMatched, g.Phase())

	g.ResetGame()
	g.Update(10)

	assert.Empty(t, g.Crafted(), "a cancelled craft never commits")
	assert.Empty(t, g.Slot())
	assert.Empty(t, g.Inventory())
	assert.Equal(t, PhaseIdle, g.Phase())
	assert.Equal(t, 0, st.Len())
}

func TestStaleCommitIgnored(t *testing.T) {
	g, _ := newTestGame(t, nil)
	rec, ok := g.Catalog().RecipeFor("Topor")
	require.True(t, ok)

	g.commit(42, rec)
	assert.Empty(t, g.Crafted())
}

func TestResetThenLoadIsEmpty(t *testing.T) {
	st := memory.New()
	g, _ := newTestGame(t, st)
	craftRecipe(t, g, "Lemn", "Piatră")
	add(t, g, "Aur")

	g.ResetGame()

	ctx := context.Background()
	_, err := st.Load(ctx, KeyInventory)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Load(ctx, KeyCrafted)
	assert.ErrorIs(t, err, store.ErrNotFound)

	reloaded, _ := newTestGame(t, st)
	assert.Empty(t, reloaded.Inventory())
	assert.Empty(t, reloaded.Crafted())
}

func TestPersistenceRoundTrip(t *testing.T) {
	st := memory.New()
	g, _ := newTestGame(t, st)
	craftRecipe(t, g, "Fier", "Oțel")
	first := add(t, g, "Lemn")
	add(t, g, "Lemn")

	ctx := context.Background()
	blob, err := st.Load(ctx, KeyInventory)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Lemn","color":"#8B4513"},{"name":"Lemn","color":"#8B4513"}]`, string(blob))

	blob, err = st.Load(ctx, KeyCrafted)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Sabie","color":"#708090","description":"O sabie puternică."}]`, string(blob))

	reloaded, _ := newTestGame(t, st)
	inv := reloaded.Inventory()
	assert.Equal(t, []string{"Lemn", "Lemn"}, names(inv))
	assert.NotEqual(t, inv[0].ID, inv[1].ID)
	assert.NotEqual(t, first.ID, inv[0].ID, "ids are regenerated on load")
	assert.Equal(t, []string{"Sabie"}, craftedNames(reloaded.Crafted()))
	assert.True(t, reloaded.IsCrafted("Sabie"))
}

func TestMalformedBlobsLoadEmpty(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, KeyInventory, []byte("{not json")))
	require.NoError(t, st.Save(ctx, KeyCrafted, []byte(`"nope"`)))

	g, _ := newTestGame(t, st)
	assert.Empty(t, g.Inventory())
	assert.Empty(t, g.Crafted())
}

func TestLoadKeepsUnknownResources(t *testing.T) {
	st := memory.New()
	ctx := context.Background()
	require.NoError(t, st.Save(ctx, KeyInventory, []byte(`[{"name":"Diamant","color":"#B9F2FF"},{"name":""}]`)))

	g, _ := newTestGame(t, st)
	inv := g.Inventory()
	require.Len(t, inv, 1)
	assert.Equal(t, "Diamant", inv[0].Kind.Name)
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingStore) Save(context.Context, string, []byte) error { return errors.New("disk on fire") }
func (failingStore) Clear(context.Context) error { return errors.New("disk on fire") }
func (failingStore) Close() error { return nil }

func TestStoreErrorsAreNotFatal(t *testing.T) {
	g, _ := newTestGame(t, failingStore{})
	craftRecipe(t, g, "Lemn", "Piatră")
	g.ResetGame()
	assert.Empty(t, g.Crafted())
}

func TestSnapshotIsACopy(t *testing.T) {
	g, _ := newTestGame(t, nil)
	add(t, g, "Fier")
	steel := add(t, g, "Oțel")
	fe := g.Inventory()[0]
	require.True(t, g.MoveToCraftingSlot(fe.ID))
	require.True(t, g.MoveToCraftingSlot(steel.ID))

	snap := g.Snapshot()
	assert.Equal(t, PhaseMatched, snap.Phase)
	require.NotNil(t, snap.Preview)
	assert.Equal(t, "Sabie", snap.Preview.Name)
	assert.False(t, snap.Won)

	snap.Slot[0].Kind.Name = "Aur"
	assert.Equal(t, "Fier", g.Slot()[0].Kind.Name)
}

func TestCustomIDsAndDelay(t *testing.T) {
	var n byte
	g := New(defs.DefaultCatalog(), Options{
		CraftDelay: 2 * time.Second,
		Logger:     quietLogger(),
		NewID: func() uuid.UUID {
			n++
			return uuid.UUID{n}
		},
	})
	wood := add(t, g, "Lemn")
	stone := add(t, g, "Piatră")
	assert.Equal(t, uuid.UUID{1}, wood.ID)
	assert.Equal(t, uuid.UUID{2}, stone.ID)

	require.True(t, g.MoveToCraftingSlot(wood.ID))
	require.True(t, g.MoveToCraftingSlot(stone.ID))
	g.Update(1.5)
	assert.Equal(t, PhaseMatched, g.Phase())
	g.Update(0.5)
	assert.Equal(t, PhaseIdle, g.Phase())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "assembling", PhaseAssembling.String())
	assert.Equal(t, "matched", PhaseMatched.String())
	assert.Equal(t, "unknown", Phase(9).String())
}
