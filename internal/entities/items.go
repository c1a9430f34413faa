// Package entities holds the records shared between a game session and the
// quest and progression layers.
package entities

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/block-cats/internal/errors"
)

// ItemKind names a consumable item
type ItemKind string

// Consumable items
const (
	// ItemLineBlast clears a three wide strip of rows or columns
	ItemLineBlast ItemKind = "line_blast"
	// ItemBoardWipe clears the whole board
	ItemBoardWipe ItemKind = "board_wipe"
	// ItemReroll replaces the tray with three new pieces
	ItemReroll ItemKind = "reroll"
)

// ItemKinds lists every item in display order
var ItemKinds = []ItemKind{ItemLineBlast, ItemBoardWipe, ItemReroll}

// Valid reports whether k is a known item
func (k ItemKind) Valid() bool {
	switch k {
	case ItemLineBlast, ItemBoardWipe, ItemReroll:
		return true
	}
	return false
}

// ItemCounts is a per-item tally. It is a plain value so copies never alias.
type ItemCounts struct {
	LineBlast int `json:"line_blast"`
	BoardWipe int `json:"board_wipe"`
	Reroll    int `json:"reroll"`
}

// Get returns the tally for kind, zero for unknown kinds
func (c ItemCounts) Get(kind ItemKind) int {
	switch kind {
	case ItemLineBlast:
		return c.LineBlast
	case ItemBoardWipe:
		return c.BoardWipe
	case ItemReroll:
		return c.Reroll
	}
	return 0
}

// Add returns a copy with n added to kind
func (c ItemCounts) Add(kind ItemKind, n int) ItemCounts {
	switch kind {
	case ItemLineBlast:
		c.LineBlast += n
	case ItemBoardWipe:
		c.BoardWipe += n
	case ItemReroll:
		c.Reroll += n
	}
	return c
}

// Plus returns the element-wise sum
func (c ItemCounts) Plus(other ItemCounts) ItemCounts {
	return ItemCounts{
		LineBlast: c.LineBlast + other.LineBlast,
		BoardWipe: c.BoardWipe + other.BoardWipe,
		Reroll:    c.Reroll + other.Reroll,
	}
}

// Total sums every item
func (c ItemCounts) Total() int {
	return c.LineBlast + c.BoardWipe + c.Reroll
}

// Inventory is how many of each item the player holds. Counts never go
// negative.
type Inventory struct {
	ItemCounts
}

// MarshalJSON flattens the embedded counts
func (inv Inventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.ItemCounts)
}

// UnmarshalJSON reads the flattened counts
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &inv.ItemCounts)
}

// Use consumes one item of kind and returns the new inventory
func (inv Inventory) Use(kind ItemKind) (Inventory, error) {
	if !kind.Valid() {
		return inv, errors.InvalidArgumentf("unknown item %q", kind)
	}
	if inv.Get(kind) <= 0 {
		return inv, errors.ResourceExhaustedf("no %s left", kind).
			WithMeta("item", string(kind))
	}
	inv.ItemCounts = inv.Add(kind, -1)
	return inv, nil
}

// Grant adds items, ignoring negative counts
func (inv Inventory) Grant(items ItemCounts) Inventory {
	for _, kind := range ItemKinds {
		if n := items.Get(kind); n > 0 {
			inv.ItemCounts = inv.Add(kind, n)
		}
	}
	return inv
}

func (inv Inventory) String() string {
	return fmt.Sprintf("%s=%d %s=%d %s=%d",
		ItemLineBlast, inv.LineBlast, ItemBoardWipe, inv.BoardWipe, ItemReroll, inv.Reroll)
}
