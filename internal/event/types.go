// internal/event/types.go
package event

const (
	ItemAdded        EventType = "ItemAdded"        // ресурс добавлен в инвентарь
	ItemMoved        EventType = "ItemMoved"        // предмет перенесён в слот крафта
	ItemDiscarded    EventType = "ItemDiscarded"    // предмет выброшен в мусор
	RecipeMatched    EventType = "RecipeMatched"    // слот совпал с рецептом, ждём коммит
	CraftCommitted   EventType = "CraftCommitted"   // предмет создан
	SlotReturned     EventType = "SlotReturned"     // слот возвращён в инвентарь
	InventoryCleared EventType = "InventoryCleared" // инвентарь очищен
	GameReset        EventType = "GameReset"        // полный сброс игры
	GameWon          EventType = "GameWon"          // открыты все рецепты
)

// ItemData is the payload of ItemAdded, ItemMoved and ItemDiscarded.
type ItemData struct {
	ItemID string
	Name   string
}

// CraftData is the payload of RecipeMatched and CraftCommitted.
type CraftData struct {
	Result      string
	Ingredients []string
}

// CountData is the payload of SlotReturned and InventoryCleared.
type CountData struct {
	Count int
}
