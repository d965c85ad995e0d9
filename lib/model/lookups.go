package model

import (
	"github.com/samber/lo"
)

// Lookup maps are built once per request from flat collections and give
// O(1) foreign key resolution. If two records share an id the last one
// wins; a consistent source never produces that.

func PeopleByID(col []*Person) map[ID]*Person {
	return lo.KeyBy(col, func(p *Person) ID { return p.ID })
}

func TeamsByID(col []*Team) map[ID]*Team {
	return lo.KeyBy(col, func(t *Team) ID { return t.ID })
}

func RolesByID(col []*Role) map[ID]*Role {
	return lo.KeyBy(col, func(r *Role) ID { return r.ID })
}

func SkillsByID(col []*Skill) map[ID]*Skill {
	return lo.KeyBy(col, func(s *Skill) ID { return s.ID })
}

func ClientsByID(col []*Client) map[ID]*Client {
	return lo.KeyBy(col, func(c *Client) ID { return c.ID })
}

func ProjectsByID(col []*Project) map[ID]*Project {
	return lo.KeyBy(col, func(p *Project) ID { return p.ID })
}
