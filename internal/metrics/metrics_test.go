package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-crafting/internal/event"
)

func TestCollectorCountsEvents(t *testing.T) {
	c := NewCollector()
	d := event.NewDispatcher()
	c.Attach(d)

	d.Dispatch(event.Event{Type: event.ItemAdded, Data: event.ItemData{Name: "Lemn"}})
	d.Dispatch(event.Event{Type: event.ItemAdded, Data: event.ItemData{Name: "Lemn"}})
	d.Dispatch(event.Event{Type: event.ItemAdded, Data: event.ItemData{Name: "Aur"}})
	d.Dispatch(event.Event{Type: event.RecipeMatched, Data: event.CraftData{Result: "Topor"}})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.itemsAdded.WithLabelValues("Lemn")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.itemsAdded.WithLabelValues("Aur")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.pending))

	d.Dispatch(event.Event{Type: event.CraftCommitted, Data: event.CraftData{Result: "Topor"}})
	assert.Equal(t, 1.0, testutil.ToFloat64(c.crafts.WithLabelValues("Topor")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.pending))

	d.Dispatch(event.Event{Type: event.SlotReturned, Data: event.CountData{Count: 2}})
	d.Dispatch(event.Event{Type: event.InventoryCleared})
	d.Dispatch(event.Event{Type: event.ItemDiscarded})
	d.Dispatch(event.Event{Type: event.GameWon})
	d.Dispatch(event.Event{Type: event.GameReset})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.slotReturns))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.clears))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.itemsDiscarded))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.wins))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.resets))
}

func TestHandlerServesMetrics(t *testing.T) {
	c := NewCollector()
	c.OnEvent(event.Event{Type: event.CraftCommitted, Data: event.CraftData{Result: "Sabie"}})

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `crafting_crafts_total{result="Sabie"} 1`)
}
