package reports

import (
	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"

	"github.com/crewlens/crewlens/lib/model"
)

// minutesPerWorkday is the 8-hour standard day.
const minutesPerWorkday = 480

// DefaultDateRangeDays is the default utilization window, in working days.
const DefaultDateRangeDays = 20

type UtilizationInputs struct {
	People      []*model.Person
	Assignments []*model.Assignment
	Actuals     []*model.Actual
	Teams       []*model.Team
	Roles       []*model.Role
}

type UtilizationParams struct {
	// TeamFilter restricts people to teams whose name contains it,
	// case-insensitively. Empty means everyone.
	TeamFilter string

	// DateRangeDays is the working-day length of the window the actuals
	// were fetched for. It is the utilization denominator.
	DateRangeDays int
}

type UtilizationReport struct {
	Summary UtilizationSummary  `json:"summary"`
	Teams   []TeamUtilization   `json:"teams"`
	People  []PersonUtilization `json:"people"`
}

type UtilizationSummary struct {
	PeopleCount             int     `json:"peopleCount"`
	AvgUtilizationPercent   float64 `json:"avgUtilizationPercent"`
	TotalBillableMinutes    int     `json:"totalBillableMinutes"`
	TotalNonbillableMinutes int     `json:"totalNonbillableMinutes"`
}

type TeamUtilization struct {
	Team                  string  `json:"team"`
	PeopleCount           int     `json:"peopleCount"`
	AvgUtilizationPercent float64 `json:"avgUtilizationPercent"`
}

type PersonUtilization struct {
	ID                 model.ID `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email,omitempty"`
	Team               string   `json:"team"`
	Role               *string  `json:"role"`
	UtilizationPercent float64  `json:"utilizationPercent"`
	BillableMinutes    int      `json:"billableMinutes"`
	NonbillableMinutes int      `json:"nonbillableMinutes"`
	AssignmentCount    int      `json:"assignmentCount"`
}

// TeamUtilizationReport computes per-person and per-team utilization over
// the actuals window.
func TeamUtilizationReport(in UtilizationInputs, params UtilizationParams) *UtilizationReport {
	days := params.DateRangeDays
	if days <= 0 {
		days = DefaultDateRangeDays
	}

	teams := model.TeamsByID(in.Teams)
	roles := model.RolesByID(in.Roles)

	people := in.People
	if params.TeamFilter != "" {
		matching := set.New[model.ID](len(in.Teams))
		for _, t := range in.Teams {
			if containsFold(t.Name, params.TeamFilter) {
				matching.Insert(t.ID)
			}
		}

		people = lo.Filter(people, func(p *model.Person, _ int) bool {
			return lo.SomeBy(p.MemberTeamIDs(), matching.Contains)
		})
	}

	assignmentsByPerson := lo.GroupBy(in.Assignments, func(a *model.Assignment) model.ID {
		return a.PersonID
	})

	type minutes struct{ billable, nonbillable int }
	actualsByPerson := map[model.ID]*minutes{}
	for _, a := range in.Actuals {
		m := actualsByPerson[a.PersonID]
		if m == nil {
			m = &minutes{}
			actualsByPerson[a.PersonID] = m
		}
		m.billable += a.BillableMinutes
		m.nonbillable += a.NonbillableMinutes
	}

	available := days * minutesPerWorkday

	report := &UtilizationReport{
		Teams:  []TeamUtilization{},
		People: make([]PersonUtilization, 0, len(people)),
	}

	var teamOrder []string
	perTeam := map[string][]float64{}

	var totalUtil float64
	for _, p := range people {
		var billable, nonbillable int
		if m := actualsByPerson[p.ID]; m != nil {
			billable, nonbillable = m.billable, m.nonbillable
		}

		util := UtilizationPercent(billable, available)

		as := assignmentsByPerson[p.ID]
		team := teamNameFor(p, teams)

		report.People = append(report.People, PersonUtilization{
			ID:                 p.ID,
			Name:               p.DisplayName(),
			Email:              p.Email,
			Team:               team,
			Role:               assignmentRole(as, roles, p.Role),
			UtilizationPercent: util,
			BillableMinutes:    billable,
			NonbillableMinutes: nonbillable,
			AssignmentCount:    len(as),
		})

		if _, ok := perTeam[team]; !ok {
			teamOrder = append(teamOrder, team)
		}
		perTeam[team] = append(perTeam[team], util)

		totalUtil += util
		report.Summary.TotalBillableMinutes += billable
		report.Summary.TotalNonbillableMinutes += nonbillable
	}

	report.Summary.PeopleCount = len(people)
	if len(people) > 0 {
		report.Summary.AvgUtilizationPercent = round2(totalUtil / float64(len(people)))
	}

	for _, name := range teamOrder {
		utils := perTeam[name]
		report.Teams = append(report.Teams, TeamUtilization{
			Team:                  name,
			PeopleCount:           len(utils),
			AvgUtilizationPercent: round2(lo.Sum(utils) / float64(len(utils))),
		})
	}

	return report
}

// assignmentRole resolves the person's displayed role from their first
// assignment's roleId, in source fetch order. Falls back to the raw
// person-level role string, then nil.
func assignmentRole(assignments []*model.Assignment, roles map[model.ID]*model.Role, fallback string) *string {
	if len(assignments) > 0 {
		if id := assignments[0].RoleID; id != nil {
			if r := roles[*id]; r != nil {
				return &r.Name
			}
		}
	}

	if fallback != "" {
		return &fallback
	}
	return nil
}
