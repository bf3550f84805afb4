package gamification

import "time"

// Priority orders default tasks in the UI.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Achievement is one catalog entry plus its per-user unlock state.
// Only Unlocked/UnlockedAt mutate; the rest is catalog-owned.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	XPReward    int        `json:"xpReward"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
	Category    Category   `json:"category"`
}

// Task is one default-catalog task plus its per-user completion state.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	XPReward    int        `json:"xpReward"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Category    Category   `json:"category"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Priority    Priority   `json:"priority"`
}

// FinancialGoal is a user-created earning target. Unlike achievements and
// tasks these are not catalog-backed; users add and remove them freely.
type FinancialGoal struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// Record is the full per-user progress record, persisted as one JSON
// value under the user's key.
type Record struct {
	XP                int             `json:"xp"`
	Level             int             `json:"level"`
	Achievements      []Achievement   `json:"achievements"`
	Tasks             []Task          `json:"tasks"`
	FinancialGoals    []FinancialGoal `json:"financialGoals"`
	Streak            int             `json:"streak"`
	LastActiveDate    string          `json:"lastActiveDate"` // YYYY-MM-DD, local time
	TotalApplications int             `json:"totalApplications"`
	TotalInterviews   int             `json:"totalInterviews"`
	TotalJobs         int             `json:"totalJobs"`
}

// DateLayout is the calendar-date format of LastActiveDate.
const DateLayout = "2006-01-02"

// DefaultRecord builds a fresh record seeded from the catalogs.
func DefaultRecord(now time.Time) Record {
	return Record{
		XP:             0,
		Level:          1,
		Achievements:   AchievementCatalog(),
		Tasks:          DefaultTaskCatalog(),
		FinancialGoals: []FinancialGoal{},
		Streak:         0,
		LastActiveDate: now.Format(DateLayout),
	}
}

// Clone deep-copies the record so snapshots handed to observers cannot
// alias engine-owned state.
func (r Record) Clone() Record {
	out := r
	out.Achievements = make([]Achievement, len(r.Achievements))
	copy(out.Achievements, r.Achievements)
	out.Tasks = make([]Task, len(r.Tasks))
	copy(out.Tasks, r.Tasks)
	out.FinancialGoals = make([]FinancialGoal, len(r.FinancialGoals))
	copy(out.FinancialGoals, r.FinancialGoals)
	return out
}

func (r *Record) achievement(id string) *Achievement {
	for i := range r.Achievements {
		if r.Achievements[i].ID == id {
			return &r.Achievements[i]
		}
	}
	return nil
}

func (r *Record) task(id string) *Task {
	for i := range r.Tasks {
		if r.Tasks[i].ID == id {
			return &r.Tasks[i]
		}
	}
	return nil
}

func (r *Record) goal(id string) *FinancialGoal {
	for i := range r.FinancialGoals {
		if r.FinancialGoals[i].ID == id {
			return &r.FinancialGoals[i]
		}
	}
	return nil
}
