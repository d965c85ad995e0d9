package reports_test

import (
	"testing"

	"github.com/bloomberg/go-testgroup"

	"github.com/crewlens/crewlens/lib/model"
	"github.com/crewlens/crewlens/lib/reports"
)

func TestTeamUtilization(t *testing.T) {
	testgroup.RunInParallel(t, &UtilizationTests{})
}

type UtilizationTests struct {
}

func idPtr(v model.ID) *model.ID {
	return &v
}

func (g *UtilizationTests) SinglePersonWindow(t *testgroup.T) {
	in := reports.UtilizationInputs{
		People:  []*model.Person{{ID: 1, FirstName: "Alice", LastName: "Smith", TeamID: idPtr(1)}},
		Actuals: []*model.Actual{{PersonID: 1, ProjectID: 1, BillableMinutes: 7200}},
	}

	r := reports.TeamUtilizationReport(in, reports.UtilizationParams{DateRangeDays: 20})

	t.Equal(1, r.Summary.PeopleCount)
	t.Equal(75.0, r.Summary.AvgUtilizationPercent)
	t.Equal(7200, r.Summary.TotalBillableMinutes)

	t.Len(r.People, 1)
	t.Equal("Alice Smith", r.People[0].Name)
	t.Equal(75.0, r.People[0].UtilizationPercent)
}

func (g *UtilizationTests) DefaultWindowIsTwentyDays(t *testgroup.T) {
	in := reports.UtilizationInputs{
		People:  []*model.Person{{ID: 1, FirstName: "Alice"}},
		Actuals: []*model.Actual{{PersonID: 1, ProjectID: 1, BillableMinutes: 4800}},
	}

	r := reports.TeamUtilizationReport(in, reports.UtilizationParams{})

	t.Equal(50.0, r.People[0].UtilizationPercent)
}

func (g *UtilizationTests) TeamFilterIsCaseInsensitiveSubstring(t *testgroup.T) {
	in := reports.UtilizationInputs{
		People: []*model.Person{
			{ID: 1, FirstName: "Ann", TeamID: idPtr(1)},
			{ID: 2, FirstName: "Bob", TeamID: idPtr(2)},
			{ID: 3, FirstName: "Cid", TeamIDs: []model.ID{1}},
		},
		Teams: []*model.Team{
			{ID: 1, Name: "Platform Engineering"},
			{ID: 2, Name: "Design"},
		},
	}

	r := reports.TeamUtilizationReport(in, reports.UtilizationParams{TeamFilter: "pLaTfOrM"})

	t.Equal(2, r.Summary.PeopleCount)
	t.Equal("Ann", r.People[0].Name)
	t.Equal("Cid", r.People[1].Name)
}

func (g *UtilizationTests) TeamFilterWithNoMatchesYieldsEmptySummary(t *testgroup.T) {
	in := reports.UtilizationInputs{
		People: []*model.Person{{ID: 1, FirstName: "Ann", TeamID: idPtr(1)}},
		Teams:  []*model.Team{{ID: 1, Name: "Platform"}},
	}

	r := reports.TeamUtilizationReport(in, reports.UtilizationParams{TeamFilter: "warehouse"})

	t.Equal(0, r.Summary.PeopleCount)
	t.Equal(0.0, r.Summary.AvgUtilizationPercent)
	t.Len(r.People, 0)
	t.Len(r.Teams, 0)
}

func (g *UtilizationTests) RoleComesFromFirstAssignment(t *testgroup.T) {
	in := reports.UtilizationInputs{
		People: []*model.Person{
			{ID: 1, FirstName: "Ann", Role: "Fallback PM"},
			{ID: 2, FirstName: "Bob", Role: "Support"},
			{ID: 3, FirstName: "Cid"},
		},
		Assignments: []*model.Assignment{
			{PersonID: 1, ProjectID: 1, RoleID: idPtr(5)},
			{PersonID: 1, ProjectID: 2, RoleID: idPtr(6)},
			{PersonID: 2, ProjectID: 1},
		},
		Roles: []*model.Role{
			{ID: 5, Name: "Engineer"},
			{ID: 6, Name: "Architect"},
		},
	}

	r := reports.TeamUtilizationReport(in, reports.UtilizationParams{})

	t.Equal("Engineer", *r.People[0].Role)
	t.Equal("Support", *r.People[1].Role)
	t.Nil(r.People[2].Role)

	t.Equal(2, r.People[0].AssignmentCount)
	t.Equal(1, r.People[1].AssignmentCount)
}

func (g *UtilizationTests) PeopleWithoutTeamsGroupAsUnassigned(t *testgroup.T) {
	in := reports.UtilizationInputs{
		People: []*model.Person{
			{ID: 1, FirstName: "Ann", TeamID: idPtr(1)},
			{ID: 2, FirstName: "Bob"},
			{ID: 3, FirstName: "Cid", TeamID: idPtr(99)},
		},
		Teams: []*model.Team{{ID: 1, Name: "Platform"}},
	}

	r := reports.TeamUtilizationReport(in, reports.UtilizationParams{})

	t.Len(r.Teams, 2)
	t.Equal("Platform", r.Teams[0].Team)
	t.Equal(1, r.Teams[0].PeopleCount)
	t.Equal("Unassigned", r.Teams[1].Team)
	t.Equal(2, r.Teams[1].PeopleCount)
}

func (g *UtilizationTests) TeamAverageIsMeanOfMembers(t *testgroup.T) {
	in := reports.UtilizationInputs{
		People: []*model.Person{
			{ID: 1, FirstName: "Ann", TeamID: idPtr(1)},
			{ID: 2, FirstName: "Bob", TeamID: idPtr(1)},
		},
		Teams: []*model.Team{{ID: 1, Name: "Platform"}},
		Actuals: []*model.Actual{
			{PersonID: 1, ProjectID: 1, BillableMinutes: 4800},
			{PersonID: 2, ProjectID: 1, BillableMinutes: 9600},
		},
	}

	r := reports.TeamUtilizationReport(in, reports.UtilizationParams{})

	t.Equal(50.0, r.People[0].UtilizationPercent)
	t.Equal(100.0, r.People[1].UtilizationPercent)
	t.Equal(75.0, r.Teams[0].AvgUtilizationPercent)
	t.Equal(75.0, r.Summary.AvgUtilizationPercent)
}

func (g *UtilizationTests) ZeroAvailableMinutesIsZeroPercent(t *testgroup.T) {
	t.Equal(0.0, reports.UtilizationPercent(7200, 0))
	t.Equal(0.0, reports.UtilizationPercent(0, 0))
	t.Equal(33.33, reports.UtilizationPercent(3200, 9600))
}
