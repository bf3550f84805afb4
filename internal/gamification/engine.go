// Package gamification implements the XP/level/achievement/task/goal/streak
// progress engine of NextStep and its persistence against a key-value store.
package gamification

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/xafn/nextstep/internal/resume"
	"github.com/xafn/nextstep/internal/storage"
)

// Engine owns one user's progress record. Every operation mutates the
// in-memory record, persists the full record, then notifies subscribers
// with a fresh snapshot. Operations are best-effort: unknown ids are
// silent no-ops and storage failures degrade to in-memory state.
//
// The engine is single-threaded by contract, like the UI event loop it
// models; callers must not share one instance across goroutines.
type Engine struct {
	store storage.Store
	log   *zap.Logger
	now   func() time.Time
	user  string

	rec  Record
	subs []subscriber
	next int
}

type subscriber struct {
	id int
	fn func(Record)
}

type Option func(*Engine)

// WithUser scopes the engine to a per-user record. An empty user operates
// on the legacy unscoped record.
func WithUser(user string) Option {
	return func(e *Engine) { e.user = user }
}

func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithClock overrides the time source. Tests use this to pin calendar
// dates for streak scenarios.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New loads (or seeds) the record for the configured user and returns a
// ready engine. Load failures never propagate: a missing record is seeded
// from the catalogs and a malformed one is logged and replaced by
// defaults.
func New(ctx context.Context, st storage.Store, opts ...Option) *Engine {
	e := &Engine{
		store: st,
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rec = e.load(ctx)
	return e
}

func (e *Engine) key() string {
	return storage.GamificationKeyFor(e.user)
}

func (e *Engine) load(ctx context.Context) Record {
	defaults := DefaultRecord(e.now())

	raw, err := e.store.Get(ctx, e.key())
	if err != nil {
		if err != storage.ErrNotFound {
			e.log.Warn("read progress record failed, starting from defaults",
				zap.String("key", e.key()), zap.Error(err))
		}
		e.persist(ctx, defaults)
		return defaults
	}

	merged, err := Merge(defaults, raw)
	if err != nil {
		e.log.Warn("malformed progress record, resetting to defaults",
			zap.String("key", e.key()), zap.Error(err))
		e.persist(ctx, defaults)
		return defaults
	}
	return merged
}

func (e *Engine) persist(ctx context.Context, rec Record) {
	raw, err := json.Marshal(rec)
	if err != nil {
		e.log.Error("encode progress record failed", zap.Error(err))
		return
	}
	if err := e.store.Put(ctx, e.key(), raw); err != nil {
		e.log.Warn("persist progress record failed, continuing in memory",
			zap.String("key", e.key()), zap.Error(err))
	}
}

// commit persists the current record and emits one snapshot, in call
// order, to every subscriber.
func (e *Engine) commit(ctx context.Context) {
	e.persist(ctx, e.rec)
	if len(e.subs) == 0 {
		return
	}
	snap := e.rec.Clone()
	for _, s := range e.subs {
		s.fn(snap)
	}
}

// Record returns a snapshot of the current record.
func (e *Engine) Record() Record {
	return e.rec.Clone()
}

// User returns the user key the engine is scoped to ("" for legacy).
func (e *Engine) User() string { return e.user }

// Subscribe registers an observer that receives one record snapshot per
// mutation. The returned function unsubscribes.
func (e *Engine) Subscribe(fn func(Record)) func() {
	e.next++
	id := e.next
	e.subs = append(e.subs, subscriber{id: id, fn: fn})
	return func() {
		for i := range e.subs {
			if e.subs[i].id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// XPResult reports the outcome of an XP grant.
type XPResult struct {
	Amount      int
	XPAfter     int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
}

// AddXP grants XP. Leveling advances at most one level per call even when
// the gain crosses several thresholds; large one-shot awards settle over
// subsequent grants. This mirrors the shipped behavior of the web app and
// is deliberate (see DESIGN.md).
func (e *Engine) AddXP(ctx context.Context, amount int) XPResult {
	res := XPResult{LevelBefore: e.rec.Level, LevelAfter: e.rec.Level, XPAfter: e.rec.XP}
	if amount <= 0 {
		return res
	}

	e.rec.XP += amount
	if next := LevelAt(e.rec.Level + 1); next != nil && e.rec.XP >= next.XPRequired {
		e.rec.Level = next.Level
	}

	res.Amount = amount
	res.XPAfter = e.rec.XP
	res.LevelAfter = e.rec.Level
	res.LevelUp = res.LevelAfter > res.LevelBefore
	e.commit(ctx)
	return res
}

// UnlockResult reports a first-time achievement unlock or task completion.
type UnlockResult struct {
	ID       string
	Title    string
	XPReward int
	XP       XPResult
}

// UnlockAchievement unlocks the achievement and grants its reward.
// Unknown or already-unlocked ids return nil without touching state.
func (e *Engine) UnlockAchievement(ctx context.Context, id string) *UnlockResult {
	a := e.rec.achievement(id)
	if a == nil || a.Unlocked {
		return nil
	}

	now := e.now()
	a.Unlocked = true
	a.UnlockedAt = &now
	title, reward := a.Title, a.XPReward
	e.commit(ctx)

	return &UnlockResult{
		ID:       id,
		Title:    title,
		XPReward: reward,
		XP:       e.AddXP(ctx, reward),
	}
}

// CompleteTask marks the task done and grants its reward. Unknown or
// already-completed ids return nil without touching state.
func (e *Engine) CompleteTask(ctx context.Context, id string) *UnlockResult {
	t := e.rec.task(id)
	if t == nil || t.Completed {
		return nil
	}

	now := e.now()
	t.Completed = true
	t.CompletedAt = &now
	title, reward := t.Title, t.XPReward
	e.commit(ctx)

	return &UnlockResult{
		ID:       id,
		Title:    title,
		XPReward: reward,
		XP:       e.AddXP(ctx, reward),
	}
}

// AddFinancialGoal appends a new goal with a fresh time-based id.
func (e *Engine) AddFinancialGoal(ctx context.Context, title string, target float64, deadline *time.Time) FinancialGoal {
	g := FinancialGoal{
		ID:           e.nextGoalID(),
		Title:        title,
		TargetAmount: target,
		Deadline:     deadline,
	}
	e.rec.FinancialGoals = append(e.rec.FinancialGoals, g)
	e.commit(ctx)
	return g
}

func (e *Engine) nextGoalID() string {
	n := e.now().UnixMilli()
	for e.rec.goal(strconv.FormatInt(n, 10)) != nil {
		n++
	}
	return strconv.FormatInt(n, 10)
}

// UpdateFinancialGoalProgress adds delta to the goal's current amount.
// Completion latches the first time the amount reaches the target; the
// flag and timestamp never revert afterwards. Returns the updated goal,
// or nil for an unknown id.
func (e *Engine) UpdateFinancialGoalProgress(ctx context.Context, id string, delta float64) *FinancialGoal {
	g := e.rec.goal(id)
	if g == nil {
		return nil
	}

	g.CurrentAmount += delta
	if g.CurrentAmount >= g.TargetAmount && !g.Completed {
		now := e.now()
		g.Completed = true
		g.CompletedAt = &now
	}
	out := *g
	e.commit(ctx)
	return &out
}

// DeleteFinancialGoal removes the goal. Reports whether it existed.
func (e *Engine) DeleteFinancialGoal(ctx context.Context, id string) bool {
	for i := range e.rec.FinancialGoals {
		if e.rec.FinancialGoals[i].ID == id {
			e.rec.FinancialGoals = append(e.rec.FinancialGoals[:i], e.rec.FinancialGoals[i+1:]...)
			e.commit(ctx)
			return true
		}
	}
	return false
}

// UpdateStreak records activity for today (local calendar date): same day
// is a no-op, the day after the last activity extends the streak, any gap
// resets it to 1. Returns the resulting streak.
func (e *Engine) UpdateStreak(ctx context.Context) int {
	now := e.now()
	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)

	switch e.rec.LastActiveDate {
	case today:
		return e.rec.Streak
	case yesterday:
		e.rec.Streak++
	default:
		e.rec.Streak = 1
	}
	e.rec.LastActiveDate = today
	e.commit(ctx)
	return e.rec.Streak
}

func (e *Engine) IncrementApplications(ctx context.Context) int {
	e.rec.TotalApplications++
	e.commit(ctx)
	return e.rec.TotalApplications
}

func (e *Engine) IncrementInterviews(ctx context.Context) int {
	e.rec.TotalInterviews++
	e.commit(ctx)
	return e.rec.TotalInterviews
}

func (e *Engine) IncrementJobs(ctx context.Context) int {
	e.rec.TotalJobs++
	e.commit(ctx)
	return e.rec.TotalJobs
}

// CheckAchievements re-evaluates the rule set against the resume snapshot
// and current counters, unlocking every achievement whose predicate holds.
// Already-unlocked achievements are untouched (unlock is idempotent), so
// calling this on every user action is safe. Returns the newly unlocked
// achievements in rule order.
func (e *Engine) CheckAchievements(ctx context.Context, snap resume.Snapshot) []UnlockResult {
	var unlocked []UnlockResult
	for _, rule := range achievementRules {
		if !rule.holds(&e.rec, snap) {
			continue
		}
		if res := e.UnlockAchievement(ctx, rule.id); res != nil {
			unlocked = append(unlocked, *res)
		}
	}
	return unlocked
}

// Reset discards all progress for this user and reseeds from the catalogs.
func (e *Engine) Reset(ctx context.Context) {
	e.rec = DefaultRecord(e.now())
	e.commit(ctx)
}
