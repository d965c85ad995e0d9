package reports

import (
	"fmt"

	"github.com/crewlens/crewlens/lib/model"
)

type PersonDetailInputs struct {
	Person      *model.Person
	Skills      []*model.PersonSkill
	Assignments []*model.Assignment
	Projects    []*model.Project

	Teams      map[model.ID]*model.Team
	Roles      map[model.ID]*model.Role
	SkillNames map[model.ID]*model.Skill
}

type PersonDetail struct {
	ID          model.ID           `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email,omitempty"`
	Team        *string            `json:"team"`
	Role        string             `json:"role,omitempty"`
	Skills      []SkillDetail      `json:"skills"`
	Assignments []AssignmentDetail `json:"assignments"`
}

type SkillDetail struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

type AssignmentDetail struct {
	Project       string  `json:"project"`
	Role          *string `json:"role"`
	StartDate     *string `json:"startDate"`
	EndDate       *string `json:"endDate"`
	MinutesPerDay int     `json:"minutesPerDay"`
}

// EnrichPersonDetails is a direct enrichment pass over one person: every id
// resolves through the lookup maps, with placeholder labels for records the
// fetch did not return.
func EnrichPersonDetails(in PersonDetailInputs) *PersonDetail {
	p := in.Person

	var team *string
	if id := p.PrimaryTeamID(); id != nil {
		if t := in.Teams[*id]; t != nil {
			team = &t.Name
		}
	}

	projects := model.ProjectsByID(in.Projects)

	skills := make([]SkillDetail, 0, len(in.Skills))
	for _, ps := range in.Skills {
		name := fmt.Sprintf("Skill %v", ps.SkillID)
		if s := in.SkillNames[ps.SkillID]; s != nil {
			name = s.Name
		}
		skills = append(skills, SkillDetail{Name: name, Level: ps.Level})
	}

	assignments := make([]AssignmentDetail, 0, len(in.Assignments))
	for _, a := range in.Assignments {
		var role *string
		if a.RoleID != nil {
			if r := in.Roles[*a.RoleID]; r != nil {
				role = &r.Name
			}
		}

		assignments = append(assignments, AssignmentDetail{
			Project:       projectLabel(projects, a.ProjectID),
			Role:          role,
			StartDate:     a.StartDate,
			EndDate:       a.EndDate,
			MinutesPerDay: a.MinutesPerDay,
		})
	}

	return &PersonDetail{
		ID:          p.ID,
		Name:        p.DisplayName(),
		Email:       p.Email,
		Team:        team,
		Role:        p.Role,
		Skills:      skills,
		Assignments: assignments,
	}
}
