package quests

import "time"

const dateLayout = "2006-01-02"

// DateKey formats the calendar date of t in t's location
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// WeekStart returns midnight of the Monday on or before t
func WeekStart(t time.Time) time.Time {
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day()-sinceMonday, 0, 0, 0, 0, t.Location())
}

// WeekKey is the date key of the week's Monday
func WeekKey(t time.Time) string {
	return DateKey(WeekStart(t))
}

// PickDailyQuests draws DailySlots distinct quests for date. The same date
// always yields the same quests in the same order.
func PickDailyQuests(date string) []DailyQuestDef {
	rng := newSeededRand(date, saltDaily)
	remaining := DailyPool()

	picked := make([]DailyQuestDef, 0, DailySlots)
	for len(picked) < DailySlots && len(remaining) > 0 {
		i := rng.intn(len(remaining))
		picked = append(picked, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	return picked
}

// PickWeeklyQuest draws the weekly quest for the week whose Monday is
// weekStart
func PickWeeklyQuest(weekStart string) WeeklyQuestDef {
	rng := newSeededRand(weekStart, saltWeekly)
	return weeklyPool[rng.intn(len(weeklyPool))]
}

// NewQuestProgress returns freshly generated state for now
func NewQuestProgress(now time.Time) QuestProgress {
	return Refresh(QuestProgress{}, now)
}

// Refresh applies any day or week rollover due at now. The daily rollover
// runs first: if every quest of the old day was claimed the weekly counter
// moves by one, on top of the credit given when the last slot was claimed.
// The weekly rollover then replaces the weekly quest when a new week started.
func Refresh(p QuestProgress, now time.Time) QuestProgress {
	today := DateKey(now)
	if today > p.Daily.Date {
		if p.Daily.Date != "" && AllDailyClaimed(p) {
			p.Weekly.Progress++
		}
		p.Daily = newDailyState(today)
		p.Counters = DailyCounters{}
	}

	week := WeekKey(now)
	if week > p.Weekly.WeekStart {
		p.Weekly = WeeklyState{
			Quest:     PickWeeklyQuest(week),
			WeekStart: week,
		}
	}
	return p
}

func newDailyState(date string) DailyState {
	state := DailyState{Date: date}
	for i, q := range PickDailyQuests(date) {
		state.Slots[i] = DailySlot{Quest: q}
	}
	return state
}
