package entities

// GameStats accumulates what happened during one game. It is built by the
// session while play continues and is read-only once the game ends.
type GameStats struct {
	MaxLinesAtOnce int        `json:"max_lines_at_once"`
	ComboEvents    int        `json:"combo_events"`
	MaxCombo       int        `json:"max_combo"`
	ItemUses       ItemCounts `json:"item_uses"`
	TotalLines     int        `json:"total_lines"`
	BlocksPlaced   int        `json:"blocks_placed"`
	FinalScore     int        `json:"final_score"`
	Skin           string     `json:"skin"`
}

// RecordPlacement folds one placement into the stats. combo is the combo
// counter after the placement.
func (s *GameStats) RecordPlacement(linesCleared, combo int) {
	s.BlocksPlaced++
	if linesCleared == 0 {
		return
	}
	s.TotalLines += linesCleared
	s.MaxLinesAtOnce = max(s.MaxLinesAtOnce, linesCleared)
	s.MaxCombo = max(s.MaxCombo, combo)
	if combo >= 2 {
		s.ComboEvents++
	}
}

// RecordItemUse counts one use of kind
func (s *GameStats) RecordItemUse(kind ItemKind) {
	s.ItemUses = s.ItemUses.Add(kind, 1)
}
