package gamification

// Category groups achievements and tasks in the UI.
type Category string

const (
	CategoryResume      Category = "resume"
	CategoryApplication Category = "application"
	CategoryInterview   Category = "interview"
	CategorySkill       Category = "skill"
	CategorySocial      Category = "social"
	CategoryFinancial   Category = "financial"
)

// Achievement ids referenced by the rule set in checks.go.
const (
	AchFirstResume       = "first-resume"
	AchResumeComplete    = "resume-complete"
	AchSkillsAdded       = "skills-added"
	AchExperienceAdded   = "experience-added"
	AchFirstApplication  = "first-application"
	AchApplicationMaster = "application-master"
	AchFirstInterview    = "first-interview"
	AchInterviewSuccess  = "interview-success"
	AchFirstPaycheck     = "first-paycheck"
	AchFinancialFreedom  = "financial-freedom"
)

// AchievementCatalog is the static seed list of unlockable achievements.
// Entries are appended over time; the persistence merge keeps older saved
// records compatible with additions.
func AchievementCatalog() []Achievement {
	return []Achievement{
		{ID: AchFirstResume, Title: "First Steps", Description: "Create your first resume", Icon: "📝", XPReward: 50, Category: CategoryResume},
		{ID: AchResumeComplete, Title: "Resume Master", Description: "Complete your resume to 100%", Icon: "🏆", XPReward: 200, Category: CategoryResume},
		{ID: AchSkillsAdded, Title: "Skill Builder", Description: "Add 5 skills to your profile", Icon: "⚡", XPReward: 75, Category: CategoryResume},
		{ID: AchExperienceAdded, Title: "Experience Collector", Description: "Add your first work experience", Icon: "💼", XPReward: 100, Category: CategoryResume},

		{ID: AchFirstApplication, Title: "First Application", Description: "Submit your first job application", Icon: "📤", XPReward: 75, Category: CategoryApplication},
		{ID: "application-streak", Title: "Application Warrior", Description: "Submit 5 applications in a week", Icon: "🔥", XPReward: 150, Category: CategoryApplication},
		{ID: AchApplicationMaster, Title: "Application Master", Description: "Submit 20 applications total", Icon: "🎯", XPReward: 300, Category: CategoryApplication},

		{ID: AchFirstInterview, Title: "Interview Debut", Description: "Complete your first interview", Icon: "🎭", XPReward: 200, Category: CategoryInterview},
		{ID: AchInterviewSuccess, Title: "Interview Pro", Description: "Complete 3 interviews", Icon: "🎪", XPReward: 400, Category: CategoryInterview},

		{ID: "skill-learner", Title: "Lifelong Learner", Description: "Learn a new skill", Icon: "📚", XPReward: 100, Category: CategorySkill},
		{ID: "skill-master", Title: "Skill Master", Description: "Master 3 different skills", Icon: "🧠", XPReward: 250, Category: CategorySkill},

		{ID: "network-builder", Title: "Network Builder", Description: "Connect with 5 professionals", Icon: "🤝", XPReward: 150, Category: CategorySocial},
		{ID: "profile-views", Title: "Profile Popular", Description: "Get 10 profile views", Icon: "👀", XPReward: 100, Category: CategorySocial},

		{ID: AchFirstPaycheck, Title: "First Paycheck", Description: "Earn your first $100", Icon: "💰", XPReward: 200, Category: CategoryFinancial},
		{ID: "savings-goal", Title: "Saver", Description: "Reach your first savings goal", Icon: "🏦", XPReward: 300, Category: CategoryFinancial},
		{ID: AchFinancialFreedom, Title: "Financial Freedom", Description: "Earn $1000 total", Icon: "💎", XPReward: 500, Category: CategoryFinancial},
	}
}

// DefaultTaskCatalog is the static seed list of onboarding tasks.
func DefaultTaskCatalog() []Task {
	return []Task{
		{ID: "complete-profile", Title: "Complete Your Profile", Description: "Fill out all sections of your profile to increase your chances", XPReward: 100, Category: CategoryResume, Priority: PriorityHigh},
		{ID: "create-resume", Title: "Create Your Resume", Description: "Build a professional resume to showcase your skills", XPReward: 150, Category: CategoryResume, Priority: PriorityHigh},
		{ID: "add-skills", Title: "Add Your Skills", Description: "List at least 5 skills you have", XPReward: 75, Category: CategoryResume, Priority: PriorityMedium},
		{ID: "first-application", Title: "Submit First Application", Description: "Apply to your first job", XPReward: 100, Category: CategoryApplication, Priority: PriorityHigh},
		{ID: "set-financial-goal", Title: "Set Financial Goal", Description: "Set a target amount you want to earn", XPReward: 50, Category: CategoryFinancial, Priority: PriorityMedium},
		{ID: "research-companies", Title: "Research Companies", Description: "Research 3 companies you'd like to work for", XPReward: 75, Category: CategoryApplication, Priority: PriorityLow},
	}
}
