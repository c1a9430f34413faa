package progression

import "github.com/KirkDiggler/block-cats/internal/entities"

// Metric names a lifetime counter that unlock conditions read
type Metric string

// Lifetime metrics
const (
	MetricGamesPlayed  Metric = "games_played"
	MetricHighestScore Metric = "highest_score"
	MetricLinesCleared Metric = "lines_cleared"
	MetricMaxCombo     Metric = "max_combo"
	MetricItemUses     Metric = "item_uses"
	MetricLineBlasts   Metric = "line_blasts"
	MetricBoardWipes   Metric = "board_wipes"
)

// Value reads metric from the counters. Unknown metrics read zero.
func (c LifetimeCounters) Value(m Metric) int {
	switch m {
	case MetricGamesPlayed:
		return c.GamesPlayed
	case MetricHighestScore:
		return c.HighestScore
	case MetricLinesCleared:
		return c.LinesCleared
	case MetricMaxCombo:
		return c.MaxCombo
	case MetricItemUses:
		return c.ItemUses.Total()
	case MetricLineBlasts:
		return c.ItemUses.LineBlast
	case MetricBoardWipes:
		return c.ItemUses.BoardWipe
	}
	return 0
}

// CosmeticSet is a purchasable or earnable skin
type CosmeticSet struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Icon is a collectible unlocked by reaching Threshold on Metric
type Icon struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Stars     int    `json:"stars"`
	Metric    Metric `json:"metric"`
	Threshold int    `json:"threshold"`
}

// CosmeticQuest is a lifetime goal that grants a cosmetic set
type CosmeticQuest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Stars     int    `json:"stars"`
	Metric    Metric `json:"metric"`
	Threshold int    `json:"threshold"`
	SetID     string `json:"set_id"`
}

// DefaultSetID is owned by every player and earns no bonus
const DefaultSetID = "classic"

// SetBonusStars is awarded for each owned set other than the default
const SetBonusStars = 5

var cosmeticSets = []CosmeticSet{
	{ID: DefaultSetID, Name: "Classic Cats"},
	{ID: "midnight", Name: "Midnight Prowl", Price: 500},
	{ID: "sakura", Name: "Sakura Nap", Price: 800},
	{ID: "neon", Name: "Neon Whiskers", Price: 1200},
	{ID: "pixel", Name: "Pixel Paws"},
}

var icons = []Icon{
	{ID: "icon_first_game", Name: "First Steps", Stars: 1, Metric: MetricGamesPlayed, Threshold: 1},
	{ID: "icon_regular", Name: "Regular", Stars: 2, Metric: MetricGamesPlayed, Threshold: 25},
	{ID: "icon_devoted", Name: "Devoted", Stars: 5, Metric: MetricGamesPlayed, Threshold: 100},
	{ID: "icon_score_500", Name: "Purring Along", Stars: 2, Metric: MetricHighestScore, Threshold: 500},
	{ID: "icon_score_2000", Name: "Top Cat", Stars: 4, Metric: MetricHighestScore, Threshold: 2000},
	{ID: "icon_lines_100", Name: "Tidy Paws", Stars: 2, Metric: MetricLinesCleared, Threshold: 100},
	{ID: "icon_lines_1000", Name: "Spotless", Stars: 5, Metric: MetricLinesCleared, Threshold: 1000},
	{ID: "icon_combo_4", Name: "Zoomies", Stars: 3, Metric: MetricMaxCombo, Threshold: 4},
	{ID: "icon_items_10", Name: "Gadget Cat", Stars: 2, Metric: MetricItemUses, Threshold: 10},
}

var cosmeticQuests = []CosmeticQuest{
	{ID: "cq_pixel_games", Title: "Finish 50 games", Stars: 3, Metric: MetricGamesPlayed, Threshold: 50, SetID: "pixel"},
	{ID: "cq_blaster", Title: "Use 20 Line Blasts", Stars: 2, Metric: MetricLineBlasts, Threshold: 20, SetID: "midnight"},
	{ID: "cq_high_score", Title: "Score 3000 in one game", Stars: 4, Metric: MetricHighestScore, Threshold: 3000, SetID: "neon"},
}

// CosmeticSets returns a copy of the set catalog
func CosmeticSets() []CosmeticSet {
	return append([]CosmeticSet(nil), cosmeticSets...)
}

// Icons returns a copy of the icon catalog
func Icons() []Icon {
	return append([]Icon(nil), icons...)
}

// CosmeticQuests returns a copy of the cosmetic quest catalog
func CosmeticQuests() []CosmeticQuest {
	return append([]CosmeticQuest(nil), cosmeticQuests...)
}

// LookupSet finds a cosmetic set by id
func LookupSet(id string) (CosmeticSet, bool) {
	for _, s := range cosmeticSets {
		if s.ID == id {
			return s, true
		}
	}
	return CosmeticSet{}, false
}

func iconStars(id string) int {
	for _, i := range icons {
		if i.ID == id {
			return i.Stars
		}
	}
	return 0
}

func cosmeticQuestStars(id string) int {
	for _, q := range cosmeticQuests {
		if q.ID == id {
			return q.Stars
		}
	}
	return 0
}

// starterInventory is granted to a brand new player
var starterInventory = entities.ItemCounts{LineBlast: 1, BoardWipe: 1, Reroll: 2}
