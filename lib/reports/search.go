package reports

import (
	"github.com/crewlens/crewlens/lib/model"
)

// Resource type selectors accepted by Search.
const (
	SearchPeople   = "people"
	SearchProjects = "projects"
	SearchClients  = "clients"
	SearchAll      = "all"
)

type SearchInputs struct {
	People   []*model.Person
	Projects []*model.Project
	Clients  []*model.Client
}

type SearchMatch struct {
	ID    model.ID `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email,omitempty"`
}

// Search runs a case-insensitive substring match across the requested
// resource types. People match on their full name or email; projects and
// clients on name. An empty or non-matching query yields empty lists,
// never an error.
func Search(in SearchInputs, query, resourceType string) map[string][]SearchMatch {
	if resourceType == "" {
		resourceType = SearchAll
	}

	matches := func(s string) bool {
		return query != "" && containsFold(s, query)
	}

	result := map[string][]SearchMatch{}

	if resourceType == SearchPeople || resourceType == SearchAll {
		people := []SearchMatch{}
		for _, p := range in.People {
			if matches(p.DisplayName()) || matches(p.Email) {
				people = append(people, SearchMatch{ID: p.ID, Name: p.DisplayName(), Email: p.Email})
			}
		}
		result[SearchPeople] = people
	}

	if resourceType == SearchProjects || resourceType == SearchAll {
		projects := []SearchMatch{}
		for _, p := range in.Projects {
			if matches(p.Name) {
				projects = append(projects, SearchMatch{ID: p.ID, Name: p.Name})
			}
		}
		result[SearchProjects] = projects
	}

	if resourceType == SearchClients || resourceType == SearchAll {
		clients := []SearchMatch{}
		for _, c := range in.Clients {
			if matches(c.Name) {
				clients = append(clients, SearchMatch{ID: c.ID, Name: c.Name})
			}
		}
		result[SearchClients] = clients
	}

	return result
}
