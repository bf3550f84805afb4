package gamification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xafn/nextstep/internal/resume"
	"github.com/xafn/nextstep/internal/storage"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *storage.Memory, *testClock) {
	t.Helper()
	st := storage.NewMemory()
	clock := &testClock{now: time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)}
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	eng := New(context.Background(), st, opts...)
	return eng, st, clock
}

func TestAddXPSingleStepPerCall(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	res := eng.AddXP(ctx, 50)
	if res.LevelUp || res.LevelAfter != 1 {
		t.Fatalf("AddXP(50): level=%d levelUp=%v, want level 1", res.LevelAfter, res.LevelUp)
	}

	res = eng.AddXP(ctx, 60)
	if !res.LevelUp || res.LevelAfter != 2 {
		t.Fatalf("AddXP to 110: level=%d levelUp=%v, want level 2", res.LevelAfter, res.LevelUp)
	}

	// 110 + 5000 crosses several thresholds, but one call advances one level.
	res = eng.AddXP(ctx, 5000)
	if res.LevelAfter != 3 {
		t.Fatalf("large AddXP: level=%d, want single-step advance to 3", res.LevelAfter)
	}
	if got := LevelForXP(res.XPAfter); got <= res.LevelAfter {
		t.Fatalf("expected recomputed level %d to exceed cached %d in multi-threshold case", got, res.LevelAfter)
	}
}

func TestAddXPMatchesLevelTableForGradualGains(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	// Gains small enough to cross at most one threshold per call keep the
	// cached level equal to the independently recomputed one.
	for i := 0; i < 150; i++ {
		eng.AddXP(ctx, 25)
	}
	rec := eng.Record()
	if want := LevelForXP(rec.XP); rec.Level != want {
		t.Fatalf("level=%d, want %d (xp=%d)", rec.Level, want, rec.XP)
	}
}

func TestAddXPIgnoresNonPositive(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	eng.AddXP(ctx, 0)
	eng.AddXP(ctx, -10)
	if rec := eng.Record(); rec.XP != 0 {
		t.Fatalf("xp=%d, want 0", rec.XP)
	}
}

func TestUnlockAchievementIdempotent(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	res := eng.UnlockAchievement(ctx, AchFirstResume)
	if res == nil {
		t.Fatalf("first unlock returned nil")
	}
	if res.XPReward != 50 || res.XP.Amount != 50 {
		t.Fatalf("reward=%d granted=%d, want 50", res.XPReward, res.XP.Amount)
	}

	rec := eng.Record()
	a := rec.Achievements[0]
	if a.ID != AchFirstResume || !a.Unlocked || a.UnlockedAt == nil {
		t.Fatalf("achievement not unlocked with timestamp: %+v", a)
	}
	firstAt := *a.UnlockedAt

	if res := eng.UnlockAchievement(ctx, AchFirstResume); res != nil {
		t.Fatalf("second unlock returned %+v, want nil", res)
	}
	rec = eng.Record()
	if rec.XP != 50 {
		t.Fatalf("xp=%d, want 50 (reward granted once)", rec.XP)
	}
	if !rec.Achievements[0].UnlockedAt.Equal(firstAt) {
		t.Fatalf("unlockedAt changed on repeat unlock")
	}
}

func TestUnlockAchievementUnknownIDNoOp(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	if res := eng.UnlockAchievement(ctx, "no-such-achievement"); res != nil {
		t.Fatalf("unknown id returned %+v, want nil", res)
	}
	if rec := eng.Record(); rec.XP != 0 {
		t.Fatalf("xp=%d, want 0", rec.XP)
	}
}

func TestCompleteTaskIdempotent(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	res := eng.CompleteTask(ctx, "create-resume")
	if res == nil || res.XPReward != 150 {
		t.Fatalf("CompleteTask: %+v, want 150 XP reward", res)
	}
	if res := eng.CompleteTask(ctx, "create-resume"); res != nil {
		t.Fatalf("repeat complete returned %+v, want nil", res)
	}

	rec := eng.Record()
	if rec.XP != 150 {
		t.Fatalf("xp=%d, want 150", rec.XP)
	}
	task := rec.Tasks[1]
	if task.ID != "create-resume" || !task.Completed || task.CompletedAt == nil {
		t.Fatalf("task not completed with timestamp: %+v", task)
	}
}

func TestFinancialGoalLifecycle(t *testing.T) {
	eng, _, clock := newTestEngine(t)
	ctx := context.Background()

	g := eng.AddFinancialGoal(ctx, "First job savings", 100, nil)
	if g.ID == "" || g.CurrentAmount != 0 || g.Completed {
		t.Fatalf("new goal: %+v", g)
	}

	upd := eng.UpdateFinancialGoalProgress(ctx, g.ID, 80)
	if upd == nil || upd.CurrentAmount != 80 || upd.Completed {
		t.Fatalf("after +80: %+v", upd)
	}

	upd = eng.UpdateFinancialGoalProgress(ctx, g.ID, 30)
	if upd == nil || upd.CurrentAmount != 110 || !upd.Completed || upd.CompletedAt == nil {
		t.Fatalf("after +30: %+v, want completed at 110", upd)
	}
	completedAt := *upd.CompletedAt

	// Completion latches: further updates never move the stamp.
	clock.now = clock.now.Add(time.Hour)
	upd = eng.UpdateFinancialGoalProgress(ctx, g.ID, 30)
	if upd == nil || !upd.CompletedAt.Equal(completedAt) {
		t.Fatalf("completedAt changed on repeat update: %+v", upd)
	}

	if eng.UpdateFinancialGoalProgress(ctx, "missing", 5) != nil {
		t.Fatalf("unknown goal id should be a no-op")
	}

	if !eng.DeleteFinancialGoal(ctx, g.ID) {
		t.Fatalf("delete existing goal reported false")
	}
	if eng.DeleteFinancialGoal(ctx, g.ID) {
		t.Fatalf("delete missing goal reported true")
	}
	if rec := eng.Record(); len(rec.FinancialGoals) != 0 {
		t.Fatalf("goals=%d, want 0", len(rec.FinancialGoals))
	}
}

func TestGoalIDsUniqueWithinSameClockReading(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	a := eng.AddFinancialGoal(ctx, "a", 10, nil)
	b := eng.AddFinancialGoal(ctx, "b", 10, nil)
	if a.ID == b.ID {
		t.Fatalf("duplicate goal id %q", a.ID)
	}
}

func TestUpdateStreak(t *testing.T) {
	eng, _, clock := newTestEngine(t)
	ctx := context.Background()

	// Fresh record: lastActiveDate is today, streak stays 0.
	if got := eng.UpdateStreak(ctx); got != 0 {
		t.Fatalf("same-day streak=%d, want 0", got)
	}

	// Next day extends.
	clock.now = clock.now.AddDate(0, 0, 1)
	if got := eng.UpdateStreak(ctx); got != 1 {
		t.Fatalf("next-day streak=%d, want 1", got)
	}
	clock.now = clock.now.AddDate(0, 0, 1)
	if got := eng.UpdateStreak(ctx); got != 2 {
		t.Fatalf("second next-day streak=%d, want 2", got)
	}

	// Same day again: no change.
	if got := eng.UpdateStreak(ctx); got != 2 {
		t.Fatalf("repeat same-day streak=%d, want 2", got)
	}

	// A gap resets to 1.
	clock.now = clock.now.AddDate(0, 0, 5)
	if got := eng.UpdateStreak(ctx); got != 1 {
		t.Fatalf("post-gap streak=%d, want 1", got)
	}
	if rec := eng.Record(); rec.LastActiveDate != clock.now.Format(DateLayout) {
		t.Fatalf("lastActiveDate=%q, want %q", rec.LastActiveDate, clock.now.Format(DateLayout))
	}
}

func TestCheckAchievementsCountersAndFinancial(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	eng.IncrementApplications(ctx)
	eng.IncrementInterviews(ctx)
	g := eng.AddFinancialGoal(ctx, "savings", 500, nil)
	eng.UpdateFinancialGoalProgress(ctx, g.ID, 150)

	newly := eng.CheckAchievements(ctx, resume.Snapshot{})
	got := map[string]bool{}
	for _, res := range newly {
		got[res.ID] = true
	}
	for _, want := range []string{AchFirstApplication, AchFirstInterview, AchFirstPaycheck} {
		if !got[want] {
			t.Fatalf("expected %s in newly unlocked, got %v", want, newly)
		}
	}
	if got[AchApplicationMaster] || got[AchFinancialFreedom] {
		t.Fatalf("thresholds not met but unlocked: %v", newly)
	}

	// Re-checking unlocks nothing new.
	if again := eng.CheckAchievements(ctx, resume.Snapshot{}); len(again) != 0 {
		t.Fatalf("second check unlocked %v, want none", again)
	}
}

func TestCheckAchievementsResumeRules(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	snap := resume.Snapshot{
		HasName:         true,
		SkillCount:      5,
		ExperienceCount: 1,
		Completion:      100,
	}
	newly := eng.CheckAchievements(ctx, snap)
	got := map[string]bool{}
	for _, res := range newly {
		got[res.ID] = true
	}
	for _, want := range []string{AchFirstResume, AchResumeComplete, AchSkillsAdded, AchExperienceAdded} {
		if !got[want] {
			t.Fatalf("expected %s unlocked, got %v", want, newly)
		}
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	eng, st, _ := newTestEngine(t)
	ctx := context.Background()

	eng.AddXP(ctx, 500)
	eng.CompleteTask(ctx, "add-skills")
	eng.Reset(ctx)

	rec := eng.Record()
	if rec.XP != 0 || rec.Level != 1 {
		t.Fatalf("after reset: xp=%d level=%d", rec.XP, rec.Level)
	}
	for _, task := range rec.Tasks {
		if task.Completed {
			t.Fatalf("task %s still completed after reset", task.ID)
		}
	}

	// The reset record is persisted, not just in memory.
	fresh := New(ctx, st, WithClock(func() time.Time { return time.Now() }))
	if got := fresh.Record(); got.XP != 0 {
		t.Fatalf("persisted xp=%d after reset, want 0", got.XP)
	}
}

func TestSubscribeOneSnapshotPerMutation(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	ctx := context.Background()

	var snaps []Record
	unsub := eng.Subscribe(func(r Record) { snaps = append(snaps, r) })

	eng.AddXP(ctx, 10)
	eng.IncrementApplications(ctx)
	if len(snaps) != 2 {
		t.Fatalf("snapshots=%d, want 2", len(snaps))
	}
	if snaps[0].XP != 10 || snaps[1].TotalApplications != 1 {
		t.Fatalf("snapshot contents wrong: %+v", snaps)
	}

	// Snapshots must not alias engine state.
	snaps[1].Tasks[0].Completed = true
	if eng.Record().Tasks[0].Completed {
		t.Fatalf("mutating a snapshot leaked into the engine")
	}

	unsub()
	eng.AddXP(ctx, 10)
	if len(snaps) != 2 {
		t.Fatalf("received snapshot after unsubscribe")
	}
}

func TestUserScopedRecordsAreIsolated(t *testing.T) {
	st := storage.NewMemory()
	ctx := context.Background()

	alice := New(ctx, st, WithUser("alice@example.com"))
	alice.AddXP(ctx, 120)

	bob := New(ctx, st, WithUser("bob@example.com"))
	if got := bob.Record().XP; got != 0 {
		t.Fatalf("bob sees alice's xp: %d", got)
	}

	again := New(ctx, st, WithUser("alice@example.com"))
	if got := again.Record().XP; got != 120 {
		t.Fatalf("alice reload xp=%d, want 120", got)
	}
}

// failingStore rejects every write and lookup, modeling disabled storage.
type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage disabled")
}
func (failingStore) Put(context.Context, string, []byte) error {
	return errors.New("storage disabled")
}
func (failingStore) Delete(context.Context, string) error {
	return errors.New("storage disabled")
}
func (failingStore) Close() error { return nil }

func TestEngineDegradesWithoutStorage(t *testing.T) {
	ctx := context.Background()
	eng := New(ctx, failingStore{})

	res := eng.AddXP(ctx, 120)
	if !res.LevelUp {
		t.Fatalf("in-memory operation failed under disabled storage: %+v", res)
	}
	if got := Progress(eng.Record()); got < 0 || got > 100 {
		t.Fatalf("derived view broken under disabled storage: %v", got)
	}
}
