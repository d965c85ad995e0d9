package server

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/crewlens/crewlens/lib/model"
	"github.com/crewlens/crewlens/lib/reports"
)

// ErrBadParam marks errors caused by an invalid request parameter, as
// opposed to upstream failures.
var ErrBadParam = errors.New("invalid parameter")

type UtilizationResult struct {
	*reports.UtilizationReport
	ResultsTruncated bool `json:"resultsTruncated,omitempty"`
}

// TeamUtilization reports billable utilization for the trailing window of
// dateRangeDays working days, optionally limited to teams whose name
// contains teamFilter.
func (s *Server) TeamUtilization(ctx context.Context, teamFilter string, dateRangeDays int) (*UtilizationResult, error) {
	log := s.opLogger("get_team_utilization")
	start := time.Now()

	if dateRangeDays <= 0 {
		dateRangeDays = reports.DefaultDateRangeDays
	}

	d, err := s.fetch(ctx,
		s.fetchPeople,
		s.fetchAssignments,
		s.fetchTeams,
		s.fetchRoles,
		s.fetchActuals(calendarSpan(dateRangeDays)),
	)
	s.logDone(log, start, err)
	if err != nil {
		return nil, err
	}

	report := reports.TeamUtilizationReport(
		reports.UtilizationInputs{
			People:      d.people,
			Assignments: d.assignments,
			Actuals:     d.actuals,
			Teams:       d.teams,
			Roles:       d.roles,
		},
		reports.UtilizationParams{
			TeamFilter:    teamFilter,
			DateRangeDays: dateRangeDays,
		})

	return &UtilizationResult{UtilizationReport: report, ResultsTruncated: d.truncated}, nil
}

type OverviewResult struct {
	*reports.OverviewReport
	ResultsTruncated bool `json:"resultsTruncated,omitempty"`
}

// ProjectOverview reports budget vs actuals and staffing per project.
// status is one of active, tentative, archived or all (the default).
func (s *Server) ProjectOverview(ctx context.Context, status string) (*OverviewResult, error) {
	log := s.opLogger("get_project_overview")
	start := time.Now()

	d, err := s.fetch(ctx,
		s.fetchProjects,
		s.fetchAssignments,
		s.fetchClients,
		s.fetchTeams,
		s.fetchPeople,
		s.fetchRoles,
		s.fetchActuals(s.opts.ActualsWindowDays),
	)
	s.logDone(log, start, err)
	if err != nil {
		return nil, err
	}

	projects, err := filterProjectsByStatus(d.projects, status)
	if err != nil {
		return nil, err
	}

	report := reports.ProjectOverviewReport(reports.OverviewInputs{
		Projects:    projects,
		Assignments: d.assignments,
		Actuals:     d.actuals,
		Clients:     d.clients,
		Teams:       d.teams,
		People:      d.people,
		Roles:       d.roles,
	})

	return &OverviewResult{OverviewReport: report, ResultsTruncated: d.truncated}, nil
}

func filterProjectsByStatus(projects []*model.Project, status string) ([]*model.Project, error) {
	switch status {
	case "", "all":
		return projects, nil
	case "active":
		return lo.Filter(projects, func(p *model.Project, _ int) bool { return p.IsConfirmed }), nil
	case "tentative":
		return lo.Filter(projects, func(p *model.Project, _ int) bool { return !p.IsConfirmed }), nil
	case "archived":
		return lo.Filter(projects, func(p *model.Project, _ int) bool { return p.IsArchived }), nil
	default:
		return nil, errors.Wrapf(ErrBadParam, "unknown project status: %v", status)
	}
}

type ForecastResult struct {
	*reports.ForecastReport
	ResultsTruncated bool `json:"resultsTruncated,omitempty"`
}

// CapacityForecast projects per-person availability over the coming weeks.
func (s *Server) CapacityForecast(ctx context.Context, weeks int) (*ForecastResult, error) {
	log := s.opLogger("get_capacity_forecast")
	start := time.Now()

	if weeks <= 0 {
		weeks = reports.DefaultForecastWeeks
	}

	d, err := s.fetch(ctx,
		s.fetchPeople,
		s.fetchAssignments,
		s.fetchProjects,
		s.fetchLeave,
		s.fetchTeams,
	)
	s.logDone(log, start, err)
	if err != nil {
		return nil, err
	}

	report := reports.CapacityForecastReport(reports.ForecastInputs{
		People:      d.people,
		Assignments: d.assignments,
		Projects:    d.projects,
		Leave:       d.leave,
		Teams:       d.teams,
	}, weeks, s.opts.Now())

	return &ForecastResult{ForecastReport: report, ResultsTruncated: d.truncated}, nil
}

type PersonDetailResult struct {
	*reports.PersonDetail
	ResultsTruncated bool `json:"resultsTruncated,omitempty"`
}

// PersonDetails returns one person enriched with team, role, skills and
// assignments.
func (s *Server) PersonDetails(ctx context.Context, id model.ID) (*PersonDetailResult, error) {
	log := s.opLogger("get_person_details")
	start := time.Now()

	var (
		person       *model.Person
		personSkills []*model.PersonSkill
		assignments  []*model.Assignment
	)

	d, err := s.fetch(ctx,
		s.fetchProjects,
		s.fetchTeams,
		s.fetchRoles,
		s.fetchSkills,
		func(ctx context.Context, _ *datasets) (bool, error) {
			var err error
			person, err = s.client.GetPerson(ctx, id)
			return false, err
		},
		func(ctx context.Context, _ *datasets) (bool, error) {
			var (
				tr  bool
				err error
			)
			personSkills, tr, err = s.client.ListPersonSkills(ctx, id)
			return tr, err
		},
		func(ctx context.Context, _ *datasets) (bool, error) {
			var (
				tr  bool
				err error
			)
			assignments, tr, err = s.client.ListPersonAssignments(ctx, id)
			return tr, err
		},
	)
	s.logDone(log, start, err)
	if err != nil {
		return nil, err
	}

	report := reports.EnrichPersonDetails(reports.PersonDetailInputs{
		Person:      person,
		Skills:      personSkills,
		Assignments: assignments,
		Projects:    d.projects,
		Teams:       model.TeamsByID(d.teams),
		Roles:       model.RolesByID(d.roles),
		SkillNames:  model.SkillsByID(d.skills),
	})

	return &PersonDetailResult{PersonDetail: report, ResultsTruncated: d.truncated}, nil
}

type SearchResult struct {
	Results          map[string][]reports.SearchMatch `json:"results"`
	ResultsTruncated bool                             `json:"resultsTruncated,omitempty"`
}

// Search matches people, projects and clients by name. resourceType is one
// of people, projects, clients or all (the default). An empty query yields
// empty lists, never an error.
func (s *Server) Search(ctx context.Context, query, resourceType string) (*SearchResult, error) {
	log := s.opLogger("search_resources")
	start := time.Now()

	if resourceType == "" {
		resourceType = reports.SearchAll
	}

	var steps []fetchStep
	switch resourceType {
	case reports.SearchPeople:
		steps = []fetchStep{s.fetchPeople}
	case reports.SearchProjects:
		steps = []fetchStep{s.fetchProjects}
	case reports.SearchClients:
		steps = []fetchStep{s.fetchClients}
	case reports.SearchAll:
		steps = []fetchStep{s.fetchPeople, s.fetchProjects, s.fetchClients}
	default:
		return nil, errors.Wrapf(ErrBadParam, "unknown resource type: %v", resourceType)
	}

	// An empty query matches nothing, so skip the fetch and return the
	// empty lists directly.
	if query == "" {
		s.logDone(log, start, nil)
		return &SearchResult{Results: reports.Search(reports.SearchInputs{}, query, resourceType)}, nil
	}

	d, err := s.fetch(ctx, steps...)
	s.logDone(log, start, err)
	if err != nil {
		return nil, err
	}

	results := reports.Search(reports.SearchInputs{
		People:   d.people,
		Projects: d.projects,
		Clients:  d.clients,
	}, query, resourceType)

	return &SearchResult{Results: results, ResultsTruncated: d.truncated}, nil
}
