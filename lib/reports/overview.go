package reports

import (
	"github.com/samber/lo"

	"github.com/crewlens/crewlens/lib/model"
)

type OverviewInputs struct {
	Projects    []*model.Project
	Assignments []*model.Assignment
	Actuals     []*model.Actual
	Clients     []*model.Client
	Teams       []*model.Team
	People      []*model.Person
	Roles       []*model.Role
}

type OverviewReport struct {
	Count    int              `json:"count"`
	Projects []ProjectSummary `json:"projects"`
}

type ProjectSummary struct {
	ID                    model.ID         `json:"id"`
	Name                  string           `json:"name"`
	Client                *string          `json:"client"`
	Team                  *string          `json:"team"`
	StartDate             *string          `json:"startDate"`
	EndDate               *string          `json:"endDate"`
	IsConfirmed           bool             `json:"isConfirmed"`
	IsTentative           bool             `json:"isTentative"`
	PricingModel          *string          `json:"pricingModel"`
	AssignmentCount       int              `json:"assignmentCount"`
	AssignedPeople        []AssignedPerson `json:"assignedPeople"`
	BudgetMinutes         int              `json:"budgetMinutes"`
	ActualMinutes         int              `json:"actualMinutes"`
	BudgetVsActualPercent *float64         `json:"budgetVsActualPercent"`
}

type AssignedPerson struct {
	ID   model.ID `json:"id"`
	Name string   `json:"name"`
	Role *string  `json:"role"`
}

// ProjectOverviewReport joins each project with its assignments and actuals
// and computes budget vs recorded time. Projects are expected to be
// pre-filtered by status; actuals are summed over whatever window the
// caller fetched.
func ProjectOverviewReport(in OverviewInputs) *OverviewReport {
	clients := model.ClientsByID(in.Clients)
	teams := model.TeamsByID(in.Teams)
	people := model.PeopleByID(in.People)
	roles := model.RolesByID(in.Roles)

	assignmentsByProject := lo.GroupBy(in.Assignments, func(a *model.Assignment) model.ID {
		return a.ProjectID
	})

	actualsByProject := map[model.ID]int{}
	for _, a := range in.Actuals {
		actualsByProject[a.ProjectID] += a.BillableMinutes + a.NonbillableMinutes
	}

	report := &OverviewReport{
		Projects: make([]ProjectSummary, 0, len(in.Projects)),
	}

	for _, proj := range in.Projects {
		as := assignmentsByProject[proj.ID]

		budget := 0
		for _, a := range as {
			// An assignment with an open date range contributes no budget.
			budget += a.MinutesPerDay * model.WorkingDaysBetween(a.StartDate, a.EndDate)
		}

		actual := actualsByProject[proj.ID]

		firstPerAssignee := lo.UniqBy(as, func(a *model.Assignment) model.ID {
			return a.PersonID
		})

		assigned := make([]AssignedPerson, 0, len(firstPerAssignee))
		for _, a := range firstPerAssignee {
			var role *string
			if a.RoleID != nil {
				if r := roles[*a.RoleID]; r != nil {
					role = &r.Name
				}
			}

			assigned = append(assigned, AssignedPerson{
				ID:   a.PersonID,
				Name: personLabel(people, a.PersonID),
				Role: role,
			})
		}

		var client, team *string
		if proj.ClientID != nil {
			if c := clients[*proj.ClientID]; c != nil {
				client = &c.Name
			}
		}
		if proj.TeamID != nil {
			if t := teams[*proj.TeamID]; t != nil {
				team = &t.Name
			}
		}

		report.Projects = append(report.Projects, ProjectSummary{
			ID:                    proj.ID,
			Name:                  proj.Name,
			Client:                client,
			Team:                  team,
			StartDate:             proj.StartDate,
			EndDate:               proj.EndDate,
			IsConfirmed:           proj.IsConfirmed,
			IsTentative:           proj.IsTentative,
			PricingModel:          proj.PricingModelName(),
			AssignmentCount:       len(as),
			AssignedPeople:        assigned,
			BudgetMinutes:         budget,
			ActualMinutes:         actual,
			BudgetVsActualPercent: BudgetVsActualPercent(actual, budget),
		})
	}

	report.Count = len(report.Projects)
	return report
}
