// Package progression tracks the player's collection: cosmetic sets, icons,
// cosmetic quests, lifetime counters and the star total derived from them.
package progression

import "github.com/KirkDiggler/block-cats/internal/entities"

// Equipped holds the cosmetics currently in use
type Equipped struct {
	Skin string `json:"skin"`
}

// LifetimeCounters accumulate across every game the player has finished
type LifetimeCounters struct {
	ItemUses     entities.ItemCounts `json:"item_uses"`
	GamesPlayed  int                 `json:"games_played"`
	HighestScore int                 `json:"highest_score"`
	LinesCleared int                 `json:"lines_cleared"`
	MaxCombo     int                 `json:"max_combo"`
}

// PlayerProgress is the persisted collection state for one player
type PlayerProgress struct {
	Nickname                string             `json:"nickname"`
	Equipped                Equipped           `json:"equipped"`
	OwnedSets               []string           `json:"owned_sets"`
	UnlockedIcons           []string           `json:"unlocked_icons"`
	CompletedCosmeticQuests []string           `json:"completed_cosmetic_quests"`
	Lifetime                LifetimeCounters   `json:"lifetime"`
	Coins                   int                `json:"coins"`
	Inventory               entities.Inventory `json:"inventory"`
}

// Unlocks lists what a single evaluation newly granted
type Unlocks struct {
	Icons          []string `json:"icons,omitempty"`
	CosmeticQuests []string `json:"cosmetic_quests,omitempty"`
	Sets           []string `json:"sets,omitempty"`
}

// Empty reports whether nothing was unlocked
func (u Unlocks) Empty() bool {
	return len(u.Icons) == 0 && len(u.CosmeticQuests) == 0 && len(u.Sets) == 0
}

// Owns reports whether the player owns setID
func (p PlayerProgress) Owns(setID string) bool {
	return contains(p.OwnedSets, setID)
}

// HasIcon reports whether iconID is unlocked
func (p PlayerProgress) HasIcon(iconID string) bool {
	return contains(p.UnlockedIcons, iconID)
}

// clone copies the slices so a returned value never aliases its input
func (p PlayerProgress) clone() PlayerProgress {
	p.OwnedSets = append([]string(nil), p.OwnedSets...)
	p.UnlockedIcons = append([]string(nil), p.UnlockedIcons...)
	p.CompletedCosmeticQuests = append([]string(nil), p.CompletedCosmeticQuests...)
	return p
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
