package gamification

// Derived views: pure projections recomputed from a record snapshot.
// None of these hold state of their own.

// CurrentLevel returns the level-table entry for the record's cached
// level, falling back to the first entry if the stored level is out of
// range.
func CurrentLevel(r Record) Level {
	if l := LevelAt(r.Level); l != nil {
		return *l
	}
	return Levels[0]
}

// NextLevel returns the entry one level up, or nil at max level.
func NextLevel(r Record) *Level {
	return LevelAt(r.Level + 1)
}

// Progress returns how far the record's XP has advanced from the current
// threshold toward the next one, as a percentage clamped to [0, 100].
// At max level there is no next threshold and progress is 100.
func Progress(r Record) float64 {
	next := NextLevel(r)
	if next == nil {
		return 100
	}
	cur := CurrentLevel(r)

	span := float64(next.XPRequired - cur.XPRequired)
	if span <= 0 {
		return 100
	}
	p := float64(r.XP-cur.XPRequired) / span * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// UnlockedAchievements filters the record's unlocked achievements.
func UnlockedAchievements(r Record) []Achievement {
	var out []Achievement
	for _, a := range r.Achievements {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}

// CompletedTasks filters the record's completed tasks.
func CompletedTasks(r Record) []Task {
	var out []Task
	for _, t := range r.Tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// PendingTasks filters the record's not-yet-completed tasks.
func PendingTasks(r Record) []Task {
	var out []Task
	for _, t := range r.Tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// TotalGoalAmount sums the current amounts across all financial goals.
// The financial achievement rules treat this as total earnings.
func TotalGoalAmount(r Record) float64 {
	total := 0.0
	for _, g := range r.FinancialGoals {
		total += g.CurrentAmount
	}
	return total
}
