package gamification

import "github.com/xafn/nextstep/internal/resume"

// achievementRule ties an achievement id to the predicate that earns it.
// Predicates read the record and the resume snapshot only; unlocking and
// XP grants stay in the engine so the rules remain pure.
type achievementRule struct {
	id    string
	holds func(r *Record, snap resume.Snapshot) bool
}

var achievementRules = []achievementRule{
	{AchFirstResume, func(_ *Record, s resume.Snapshot) bool {
		return s.HasName
	}},
	{AchResumeComplete, func(_ *Record, s resume.Snapshot) bool {
		return s.Completion >= 100
	}},
	{AchSkillsAdded, func(_ *Record, s resume.Snapshot) bool {
		return s.SkillCount >= 5
	}},
	{AchExperienceAdded, func(_ *Record, s resume.Snapshot) bool {
		return s.ExperienceCount > 0
	}},

	{AchFirstApplication, func(r *Record, _ resume.Snapshot) bool {
		return r.TotalApplications >= 1
	}},
	{AchApplicationMaster, func(r *Record, _ resume.Snapshot) bool {
		return r.TotalApplications >= 20
	}},

	{AchFirstInterview, func(r *Record, _ resume.Snapshot) bool {
		return r.TotalInterviews >= 1
	}},
	{AchInterviewSuccess, func(r *Record, _ resume.Snapshot) bool {
		return r.TotalInterviews >= 3
	}},

	{AchFirstPaycheck, func(r *Record, _ resume.Snapshot) bool {
		return TotalGoalAmount(*r) >= 100
	}},
	{AchFinancialFreedom, func(r *Record, _ resume.Snapshot) bool {
		return TotalGoalAmount(*r) >= 1000
	}},
}
