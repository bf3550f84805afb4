// Package resume holds the resume snapshot the gamification engine's
// achievement checks consume, plus the completion scoring used by the
// resume builder UI.
package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/xafn/nextstep/internal/storage"
)

type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Website   string `json:"website"`
	Summary   string `json:"summary"`
}

type Education struct {
	ID           string   `json:"id"`
	School       string   `json:"school"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements"`
}

type Experience struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description []string `json:"description"`
	Skills      []string `json:"skills"`
}

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"` // beginner|intermediate|advanced|expert
	Category string `json:"category"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Image        string   `json:"image,omitempty"`
}

type Data struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	Skills       []Skill      `json:"skills"`
	Projects     []Project    `json:"projects"`
}

// Snapshot is the read-only projection the gamification engine evaluates
// achievement rules against.
type Snapshot struct {
	HasName         bool
	SkillCount      int
	ExperienceCount int
	Completion      int
}

func (d Data) Snapshot() Snapshot {
	return Snapshot{
		HasName:         d.PersonalInfo.FirstName != "" && d.PersonalInfo.LastName != "",
		SkillCount:      len(d.Skills),
		ExperienceCount: len(d.Experience),
		Completion:      Completion(d),
	}
}

// Completion scores how finished a resume is, as a rounded percentage.
// Personal info weighs 55 points, education 25, experience 20.
func Completion(d Data) int {
	completed := 0
	total := 0

	if d.PersonalInfo.FirstName != "" {
		completed += 10
	}
	if d.PersonalInfo.LastName != "" {
		completed += 10
	}
	if d.PersonalInfo.Email != "" {
		completed += 15
	}
	if d.PersonalInfo.Phone != "" {
		completed += 5
	}
	if d.PersonalInfo.Location != "" {
		completed += 5
	}
	if d.PersonalInfo.Summary != "" {
		completed += 10
	}
	total += 55

	if len(d.Education) > 0 {
		completed += 15
		edu := d.Education[0]
		if edu.School != "" {
			completed += 5
		}
		if edu.Degree != "" || edu.Field != "" {
			completed += 5
		}
	}
	total += 25

	if len(d.Experience) > 0 {
		completed += 20
	}
	total += 20

	return int(math.Round(float64(completed) / float64(total) * 100))
}

// Load reads the persisted resume for the user. A missing key yields an
// empty resume; a malformed one yields an empty resume and the parse error
// so the caller can log it.
func Load(ctx context.Context, st storage.Store, user string) (Data, error) {
	raw, err := st.Get(ctx, storage.ResumeKeyFor(user))
	if err != nil {
		if err == storage.ErrNotFound {
			return Data{}, nil
		}
		return Data{}, fmt.Errorf("load resume: %w", err)
	}

	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("parse resume: %w", err)
	}
	return d, nil
}

// Save overwrites the persisted resume for the user.
func Save(ctx context.Context, st storage.Store, user string, d Data) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}
	if err := st.Put(ctx, storage.ResumeKeyFor(user), raw); err != nil {
		return fmt.Errorf("save resume: %w", err)
	}
	return nil
}

// Sample returns the demo resume used to showcase the builder.
func Sample() Data {
	return Data{
		PersonalInfo: PersonalInfo{
			FirstName: "Jake",
			LastName:  "Smith",
			Email:     "jake.smith@email.com",
			Phone:     "(555) 123-4567",
			Location:  "Toronto, ON",
			LinkedIn:  "linkedin.com/in/jakesmith",
			Summary:   "Motivated student seeking a first part-time role.",
		},
		Education: []Education{
			{
				ID:        "edu-1",
				School:    "Central High School",
				Degree:    "High School Diploma",
				Field:     "General Studies",
				StartDate: "2022-09",
				EndDate:   "2026-06",
			},
		},
		Experience: []Experience{
			{
				ID:        "exp-1",
				Title:     "Volunteer Tutor",
				Company:   "Community Center",
				Location:  "Toronto, ON",
				StartDate: "2024-01",
				Current:   true,
				Description: []string{
					"Tutored middle-school students in math twice a week",
				},
			},
		},
		Skills: []Skill{
			{ID: "skill-1", Name: "Communication", Level: "intermediate", Category: "soft"},
			{ID: "skill-2", Name: "Teamwork", Level: "intermediate", Category: "soft"},
			{ID: "skill-3", Name: "Python", Level: "beginner", Category: "technical"},
			{ID: "skill-4", Name: "Time Management", Level: "intermediate", Category: "soft"},
			{ID: "skill-5", Name: "Customer Service", Level: "beginner", Category: "soft"},
		},
	}
}
