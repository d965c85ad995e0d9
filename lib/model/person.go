package model

import (
	"fmt"
	"strings"
)

type Person struct {
	ID        ID     `json:"id"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	TeamID    *ID    `json:"teamId,omitempty"`
	TeamIDs   []ID   `json:"teamIds,omitempty"`
	Role      string `json:"role,omitempty"`
}

// DisplayName is "first last" trimmed, falling back to "Person {id}" when
// both name parts are empty.
func (p *Person) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	if name == "" {
		return fmt.Sprintf("Person %v", p.ID)
	}
	return name
}

// PrimaryTeamID is the person's teamId, or the first of teamIds when the
// singular field is absent.
func (p *Person) PrimaryTeamID() *ID {
	if p.TeamID != nil {
		return p.TeamID
	}
	if len(p.TeamIDs) > 0 {
		return &p.TeamIDs[0]
	}
	return nil
}

// MemberTeamIDs lists every team the person belongs to, through either the
// singular teamId field or the teamIds list.
func (p *Person) MemberTeamIDs() []ID {
	var result []ID
	if p.TeamID != nil {
		result = append(result, *p.TeamID)
	}
	for _, id := range p.TeamIDs {
		if p.TeamID == nil || id != *p.TeamID {
			result = append(result, id)
		}
	}
	return result
}

// PersonSkill links a person to a skill at a proficiency level.
type PersonSkill struct {
	SkillID ID     `json:"skillId"`
	Level   string `json:"level,omitempty"`
}
