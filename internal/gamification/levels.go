package gamification

// Level is one row of the static level table.
type Level struct {
	Level       int      `json:"level"`
	XPRequired  int      `json:"xpRequired"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Rewards     []string `json:"rewards"`
}

// Levels is the full level table, ordered by level. Immutable.
var Levels = []Level{
	{Level: 1, XPRequired: 0, Title: "Job Seeker", Description: "Just getting started!", Rewards: []string{"Basic profile access"}},
	{Level: 2, XPRequired: 100, Title: "Resume Builder", Description: "Building your foundation", Rewards: []string{"Resume templates", "+10% profile visibility"}},
	{Level: 3, XPRequired: 250, Title: "Application Master", Description: "Getting the hang of it", Rewards: []string{"Application tracking", "Job recommendations"}},
	{Level: 4, XPRequired: 500, Title: "Interview Pro", Description: "Confidence is growing", Rewards: []string{"Interview prep tools", "+25% profile visibility"}},
	{Level: 5, XPRequired: 1000, Title: "Career Explorer", Description: "Discovering your path", Rewards: []string{"Skill assessments", "Mentorship access"}},
	{Level: 6, XPRequired: 2000, Title: "Job Hunter", Description: "You're getting noticed", Rewards: []string{"Priority job alerts", "+50% profile visibility"}},
	{Level: 7, XPRequired: 3500, Title: "Professional", Description: "Building your brand", Rewards: []string{"LinkedIn integration", "Portfolio builder"}},
	{Level: 8, XPRequired: 5500, Title: "Career Champion", Description: "Leading the way", Rewards: []string{"Resume review service", "Mock interviews"}},
	{Level: 9, XPRequired: 8000, Title: "Employment Expert", Description: "You've got this!", Rewards: []string{"Career coaching", "Networking events"}},
	{Level: 10, XPRequired: 12000, Title: "Future Leader", Description: "The sky's the limit!", Rewards: []string{"All premium features", "Featured profile"}},
}

// MaxLevel is the highest level in the table.
func MaxLevel() int {
	return Levels[len(Levels)-1].Level
}

// LevelAt returns the table entry for the given level, or nil when the
// level is outside the table.
func LevelAt(level int) *Level {
	for i := range Levels {
		if Levels[i].Level == level {
			return &Levels[i]
		}
	}
	return nil
}

// LevelForXP returns the highest level whose threshold is <= xp.
// This is the independent recomputation of level-from-xp; the engine's
// AddXP deliberately advances one level per call instead (see AddXP).
func LevelForXP(xp int) int {
	level := Levels[0].Level
	for _, l := range Levels {
		if xp >= l.XPRequired {
			level = l.Level
		}
	}
	return level
}
