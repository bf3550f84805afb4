package gamification

import (
	"encoding/json"
	"fmt"
)

// savedRecord mirrors Record with pointer scalars so the merge can tell
// "field absent from the saved JSON" apart from a zero value. Fields
// added to Record in later releases stay at their defaults for records
// saved before the addition.
type savedRecord struct {
	XP                *int            `json:"xp"`
	Level             *int            `json:"level"`
	Achievements      []Achievement   `json:"achievements"`
	Tasks             []Task          `json:"tasks"`
	FinancialGoals    []FinancialGoal `json:"financialGoals"`
	Streak            *int            `json:"streak"`
	LastActiveDate    *string         `json:"lastActiveDate"`
	TotalApplications *int            `json:"totalApplications"`
	TotalInterviews   *int            `json:"totalInterviews"`
	TotalJobs         *int            `json:"totalJobs"`
}

// Merge reconciles a previously saved record with the current catalog
// defaults. Top-level fields present in the saved JSON override the
// defaults; achievements and tasks are rebuilt from the current catalogs
// with only their mutable progress fields carried over, so catalog
// entries added since the save appear locked and removed ones drop.
func Merge(defaults Record, raw []byte) (Record, error) {
	var saved savedRecord
	if err := json.Unmarshal(raw, &saved); err != nil {
		return Record{}, fmt.Errorf("parse progress record: %w", err)
	}

	out := defaults.Clone()

	if saved.XP != nil {
		out.XP = *saved.XP
	}
	if saved.Level != nil && *saved.Level > out.Level {
		// Levels never downgrade, whatever the saved XP says.
		out.Level = *saved.Level
	}
	if saved.Streak != nil {
		out.Streak = *saved.Streak
	}
	if saved.LastActiveDate != nil {
		out.LastActiveDate = *saved.LastActiveDate
	}
	if saved.TotalApplications != nil {
		out.TotalApplications = *saved.TotalApplications
	}
	if saved.TotalInterviews != nil {
		out.TotalInterviews = *saved.TotalInterviews
	}
	if saved.TotalJobs != nil {
		out.TotalJobs = *saved.TotalJobs
	}
	if saved.FinancialGoals != nil {
		out.FinancialGoals = saved.FinancialGoals
	}

	out.Achievements = mergeAchievements(out.Achievements, saved.Achievements)
	out.Tasks = mergeTasks(out.Tasks, saved.Tasks)
	return out, nil
}

// mergeAchievements walks the current catalog and carries over the unlock
// state of any saved entry with a matching id. Saved entries without a
// catalog counterpart are dropped.
func mergeAchievements(catalog []Achievement, saved []Achievement) []Achievement {
	if len(saved) == 0 {
		return catalog
	}
	byID := make(map[string]*Achievement, len(saved))
	for i := range saved {
		byID[saved[i].ID] = &saved[i]
	}
	for i := range catalog {
		if s, ok := byID[catalog[i].ID]; ok {
			catalog[i].Unlocked = s.Unlocked
			catalog[i].UnlockedAt = s.UnlockedAt
		}
	}
	return catalog
}

// mergeTasks is the same reconciliation for the default task catalog.
// Deadline and priority are catalog-owned and not carried over.
func mergeTasks(catalog []Task, saved []Task) []Task {
	if len(saved) == 0 {
		return catalog
	}
	byID := make(map[string]*Task, len(saved))
	for i := range saved {
		byID[saved[i].ID] = &saved[i]
	}
	for i := range catalog {
		if s, ok := byID[catalog[i].ID]; ok {
			catalog[i].Completed = s.Completed
			catalog[i].CompletedAt = s.CompletedAt
		}
	}
	return catalog
}
