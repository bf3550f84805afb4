package gamification

import (
	"testing"
	"time"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{11999, 9},
		{12000, 10},
		{50000, 10},
	}
	for _, tc := range cases {
		if got := LevelForXP(tc.xp); got != tc.want {
			t.Fatalf("LevelForXP(%d)=%d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestProgress(t *testing.T) {
	rec := DefaultRecord(time.Now())

	rec.XP = 0
	rec.Level = 1
	if got := Progress(rec); got != 0 {
		t.Fatalf("progress at 0 xp = %v, want 0", got)
	}

	// Level 1 spans 0..100: halfway.
	rec.XP = 50
	if got := Progress(rec); got != 50 {
		t.Fatalf("progress at 50 xp = %v, want 50", got)
	}

	// Cached level lagging far behind xp clamps instead of overflowing.
	rec.XP = 5000
	rec.Level = 2
	if got := Progress(rec); got != 100 {
		t.Fatalf("progress with lagging level = %v, want clamp to 100", got)
	}

	// Max level reports 100 with no next threshold.
	rec.Level = MaxLevel()
	rec.XP = 12000
	if got := Progress(rec); got != 100 {
		t.Fatalf("progress at max level = %v, want 100", got)
	}
	if NextLevel(rec) != nil {
		t.Fatalf("NextLevel at max level should be nil")
	}
}

func TestCurrentLevelFallsBackToFirstEntry(t *testing.T) {
	rec := DefaultRecord(time.Now())
	rec.Level = 99
	if got := CurrentLevel(rec); got.Level != 1 {
		t.Fatalf("out-of-range level resolved to %d, want fallback 1", got.Level)
	}
}

func TestTaskAndAchievementFilters(t *testing.T) {
	rec := DefaultRecord(time.Now())
	now := time.Now()
	rec.Tasks[0].Completed = true
	rec.Tasks[0].CompletedAt = &now
	rec.Achievements[3].Unlocked = true

	if got := len(CompletedTasks(rec)); got != 1 {
		t.Fatalf("completed=%d, want 1", got)
	}
	if got := len(PendingTasks(rec)); got != len(rec.Tasks)-1 {
		t.Fatalf("pending=%d, want %d", got, len(rec.Tasks)-1)
	}
	if got := len(UnlockedAchievements(rec)); got != 1 {
		t.Fatalf("unlocked=%d, want 1", got)
	}
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range AchievementCatalog() {
		if seen[a.ID] {
			t.Fatalf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
	}
	seen = map[string]bool{}
	for _, task := range DefaultTaskCatalog() {
		if seen[task.ID] {
			t.Fatalf("duplicate task id %q", task.ID)
		}
		seen[task.ID] = true
	}
}
