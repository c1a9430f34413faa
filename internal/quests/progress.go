package quests

import "github.com/KirkDiggler/block-cats/internal/entities"

// Value maps a quest type onto the counter it reads. Unknown types read
// zero, so a quest with an unknown type can never complete.
func (c DailyCounters) Value(t QuestType) int {
	switch t {
	case TypeLinesCleared:
		return c.LinesCleared
	case TypeBestScore:
		return c.BestScore
	case TypeMaxCombo:
		return c.MaxCombo
	case TypeGamesPlayed:
		return c.GamesPlayed
	case TypeBlocksPlaced:
		return c.BlocksPlaced
	case TypeMaxLinesAtOnce:
		return c.MaxLinesAtOnce
	case TypeUseLineBlast:
		return c.ItemUses.LineBlast
	case TypeUseBoardWipe:
		return c.ItemUses.BoardWipe
	case TypeUseReroll:
		return c.ItemUses.Reroll
	case TypeUseItems:
		return c.ItemUses.Total()
	}
	return 0
}

// KnownDailyType reports whether t maps onto a daily counter
func KnownDailyType(t QuestType) bool {
	switch t {
	case TypeLinesCleared, TypeBestScore, TypeMaxCombo, TypeGamesPlayed, TypeBlocksPlaced,
		TypeMaxLinesAtOnce, TypeUseLineBlast, TypeUseBoardWipe, TypeUseReroll, TypeUseItems:
		return true
	}
	return false
}

// Fold adds a finished game to the counters
func (c DailyCounters) Fold(stats entities.GameStats) DailyCounters {
	c.GamesPlayed++
	c.ItemUses = c.ItemUses.Plus(stats.ItemUses)
	c.LinesCleared += stats.TotalLines
	c.BlocksPlaced += stats.BlocksPlaced
	c.BestScore = max(c.BestScore, stats.FinalScore)
	c.MaxLinesAtOnce = max(c.MaxLinesAtOnce, stats.MaxLinesAtOnce)
	c.MaxCombo = max(c.MaxCombo, stats.MaxCombo)
	return c
}

// ApplyGameStats folds a finished game into today's counters and recomputes
// the progress of every unclaimed daily slot
func ApplyGameStats(p QuestProgress, stats entities.GameStats) QuestProgress {
	p.Counters = p.Counters.Fold(stats)
	for i := range p.Daily.Slots {
		slot := &p.Daily.Slots[i]
		if slot.Claimed {
			continue
		}
		slot.Progress = p.Counters.Value(slot.Quest.Type)
	}
	return p
}

// DailyComplete reports whether slot has reached its target and is still
// unclaimed
func DailyComplete(p QuestProgress, slot int) bool {
	if slot < 0 || slot >= DailySlots {
		return false
	}
	s := p.Daily.Slots[slot]
	return s.Quest.ID != "" && !s.Claimed && s.Progress >= s.Quest.Target
}

// AllDailyClaimed reports whether every daily slot has been claimed
func AllDailyClaimed(p QuestProgress) bool {
	for _, s := range p.Daily.Slots {
		if !s.Claimed {
			return false
		}
	}
	return true
}

// ClaimDaily settles slot. ok is false, and p is returned unchanged, when
// the slot is not complete. Claiming the last open slot of the day credits
// the weekly counter immediately.
func ClaimDaily(p QuestProgress, slot int) (next QuestProgress, reward Reward, ok bool) {
	if !DailyComplete(p, slot) {
		return p, Reward{}, false
	}

	p.Daily.Slots[slot].Claimed = true
	if AllDailyClaimed(p) {
		p.Daily.SetsCompleted++
		p.Weekly.Progress++
	}
	return p, p.Daily.Slots[slot].Quest.Reward, true
}

// WeeklyComplete reports whether the weekly quest reached its target and is
// still unclaimed
func WeeklyComplete(p QuestProgress) bool {
	w := p.Weekly
	return w.Quest.ID != "" && !w.Claimed && w.Progress >= w.Quest.Target
}

// ClaimWeekly settles the weekly quest with the same rules as ClaimDaily
func ClaimWeekly(p QuestProgress) (next QuestProgress, reward Reward, ok bool) {
	if !WeeklyComplete(p) {
		return p, Reward{}, false
	}
	p.Weekly.Claimed = true
	return p, p.Weekly.Quest.Reward, true
}
