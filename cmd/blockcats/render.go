package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/block-cats/internal/entities"
	"github.com/KirkDiggler/block-cats/internal/puzzle"
	"github.com/KirkDiggler/block-cats/internal/quests"
)

func renderBoard(w io.Writer, b puzzle.Board) {
	for r := 0; r < puzzle.Size; r++ {
		var sb strings.Builder
		for c := 0; c < puzzle.Size; c++ {
			cat, ok := b.At(r, c).Cat()
			if !ok {
				sb.WriteString(" .")
				continue
			}
			sb.WriteByte(' ')
			sb.WriteString(strings.ToUpper(cat.String()[:1]))
		}
		fmt.Fprintln(w, sb.String())
	}
}

func formatItems(items entities.ItemCounts) string {
	var parts []string
	for _, kind := range entities.ItemKinds {
		if n := items.Get(kind); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, kind))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func formatReward(r quests.Reward) string {
	if r.Items.Total() == 0 {
		return fmt.Sprintf("%d coins", r.Coins)
	}
	return fmt.Sprintf("%d coins + %s", r.Coins, formatItems(r.Items))
}

func questStatus(progress, target int, claimed bool) string {
	switch {
	case claimed:
		return "claimed"
	case progress >= target:
		return "ready"
	default:
		return ""
	}
}

func renderQuests(w io.Writer, qp quests.QuestProgress) {
	fmt.Fprintf(w, "Daily quests for %s:\n", qp.Daily.Date)
	for i, slot := range qp.Daily.Slots {
		fmt.Fprintf(w, "  [%d] %-28s %3d/%-4d %-22s %s\n",
			i+1, slot.Quest.Title, min(slot.Progress, slot.Quest.Target), slot.Quest.Target,
			formatReward(slot.Quest.Reward), questStatus(slot.Progress, slot.Quest.Target, slot.Claimed))
	}

	weekly := qp.Weekly
	fmt.Fprintf(w, "Weekly quest (week of %s):\n", weekly.WeekStart)
	fmt.Fprintf(w, "  [W] %-28s %3d/%-4d %-22s %s\n",
		weekly.Quest.Title, min(weekly.Progress, weekly.Quest.Target), weekly.Quest.Target,
		formatReward(weekly.Quest.Reward), questStatus(weekly.Progress, weekly.Quest.Target, weekly.Claimed))
}
