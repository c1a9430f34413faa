package progression

import (
	"github.com/KirkDiggler/block-cats/internal/entities"
	"github.com/KirkDiggler/block-cats/internal/errors"
)

// NewPlayerProgress returns the state of a player who has never played
func NewPlayerProgress(nickname string) PlayerProgress {
	return PlayerProgress{
		Nickname:  nickname,
		Equipped:  Equipped{Skin: DefaultSetID},
		OwnedSets: []string{DefaultSetID},
		Inventory: entities.Inventory{}.Grant(starterInventory),
	}
}

// RecordGame folds a finished game into the lifetime counters and
// evaluates unlocks against the new totals
func RecordGame(p PlayerProgress, stats entities.GameStats) (PlayerProgress, Unlocks) {
	p = p.clone()
	p.Lifetime.GamesPlayed++
	p.Lifetime.ItemUses = p.Lifetime.ItemUses.Plus(stats.ItemUses)
	p.Lifetime.HighestScore = max(p.Lifetime.HighestScore, stats.FinalScore)
	p.Lifetime.LinesCleared += stats.TotalLines
	p.Lifetime.MaxCombo = max(p.Lifetime.MaxCombo, stats.MaxCombo)
	return EvaluateUnlocks(p)
}

// EvaluateUnlocks grants every icon and cosmetic quest whose threshold the
// lifetime counters now meet. Completing a cosmetic quest grants its set.
func EvaluateUnlocks(p PlayerProgress) (PlayerProgress, Unlocks) {
	p = p.clone()
	var u Unlocks

	for _, icon := range icons {
		if p.HasIcon(icon.ID) || p.Lifetime.Value(icon.Metric) < icon.Threshold {
			continue
		}
		p.UnlockedIcons = append(p.UnlockedIcons, icon.ID)
		u.Icons = append(u.Icons, icon.ID)
	}

	for _, q := range cosmeticQuests {
		if contains(p.CompletedCosmeticQuests, q.ID) || p.Lifetime.Value(q.Metric) < q.Threshold {
			continue
		}
		p.CompletedCosmeticQuests = append(p.CompletedCosmeticQuests, q.ID)
		u.CosmeticQuests = append(u.CosmeticQuests, q.ID)
		if q.SetID != "" && !p.Owns(q.SetID) {
			p.OwnedSets = append(p.OwnedSets, q.SetID)
			u.Sets = append(u.Sets, q.SetID)
		}
	}

	return p, u
}

// TotalStars sums the stars of unlocked icons and completed cosmetic
// quests plus SetBonusStars per owned non-default set. Duplicate ids count
// once and unknown ids count zero.
func TotalStars(p PlayerProgress) int {
	total := 0
	for _, id := range distinct(p.UnlockedIcons) {
		total += iconStars(id)
	}
	for _, id := range distinct(p.CompletedCosmeticQuests) {
		total += cosmeticQuestStars(id)
	}
	for _, id := range distinct(p.OwnedSets) {
		if id != DefaultSetID {
			total += SetBonusStars
		}
	}
	return total
}

// Grant credits coins and items from a quest reward
func Grant(p PlayerProgress, coins int, items entities.ItemCounts) PlayerProgress {
	p = p.clone()
	if coins > 0 {
		p.Coins += coins
	}
	p.Inventory = p.Inventory.Grant(items)
	return p
}

// UnlockIcon adds iconID, for unlocks granted outside of play
func UnlockIcon(p PlayerProgress, iconID string) (PlayerProgress, error) {
	if iconStars(iconID) == 0 {
		return p, errors.NotFoundf("icon %q not found", iconID)
	}
	p = p.clone()
	if !p.HasIcon(iconID) {
		p.UnlockedIcons = append(p.UnlockedIcons, iconID)
	}
	return p, nil
}

// PurchaseSet buys setID with coins
func PurchaseSet(p PlayerProgress, setID string) (PlayerProgress, error) {
	set, ok := LookupSet(setID)
	if !ok {
		return p, errors.NotFoundf("cosmetic set %q not found", setID)
	}
	if p.Owns(setID) {
		return p, errors.FailedPreconditionf("cosmetic set %q already owned", setID)
	}
	if set.Price <= 0 {
		return p, errors.FailedPreconditionf("cosmetic set %q cannot be bought", setID)
	}
	if p.Coins < set.Price {
		return p, errors.FailedPreconditionf("need %d coins for %q, have %d", set.Price, setID, p.Coins).
			WithMeta("price", set.Price)
	}

	p = p.clone()
	p.Coins -= set.Price
	p.OwnedSets = append(p.OwnedSets, setID)
	return p, nil
}

// Equip switches the active skin to an owned set
func Equip(p PlayerProgress, setID string) (PlayerProgress, error) {
	if !p.Owns(setID) {
		return p, errors.FailedPreconditionf("cosmetic set %q is not owned", setID)
	}
	p = p.clone()
	p.Equipped.Skin = setID
	return p, nil
}

func distinct(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
