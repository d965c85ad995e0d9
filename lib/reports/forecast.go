package reports

import (
	"time"

	"github.com/samber/lo"

	"github.com/crewlens/crewlens/lib/model"
)

// DefaultForecastWeeks is the default forecast horizon.
const DefaultForecastWeeks = 8

type ForecastInputs struct {
	People      []*model.Person
	Assignments []*model.Assignment
	Projects    []*model.Project
	Leave       []*model.Leave
	Teams       []*model.Team
}

type ForecastReport struct {
	WeeksAhead                  int              `json:"weeksAhead"`
	TotalPeople                 int              `json:"totalPeople"`
	CurrentlyUnassigned         int              `json:"currentlyUnassigned"`
	PeopleWithEndingAssignments int              `json:"peopleWithEndingAssignments"`
	Weeks                       []WeekBucket     `json:"weeklyOutlook"`
	People                      []PersonForecast `json:"people"`
}

type WeekBucket struct {
	Week               int     `json:"week"`
	WeekStarting       string  `json:"weekStarting"`
	AssignedCount      int     `json:"assignedCount"`
	AvailableCount     int     `json:"availableCount"`
	UtilizationPercent float64 `json:"utilizationPercent"`
}

type PersonForecast struct {
	ID                    model.ID           `json:"id"`
	Name                  string             `json:"name"`
	Team                  string             `json:"team"`
	ActiveAssignmentCount int                `json:"activeAssignmentCount"`
	EndingSoon            []EndingAssignment `json:"endingSoon"`
	UpcomingLeave         []LeaveEntry       `json:"upcomingLeave"`
	FullyAvailableAfter   *string            `json:"fullyAvailableAfter"`
}

type EndingAssignment struct {
	Project string `json:"project"`
	EndDate string `json:"endDate"`
}

type LeaveEntry struct {
	Type      string  `json:"type"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// CapacityForecastReport projects availability over the coming weeks.
// Assignments and leave with open date ranges are treated as unbounded on
// the missing side. The caller injects now; only its date matters.
func CapacityForecastReport(in ForecastInputs, weeks int, now time.Time) *ForecastReport {
	if weeks <= 0 {
		weeks = DefaultForecastWeeks
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, weeks*7)

	teams := model.TeamsByID(in.Teams)
	projects := model.ProjectsByID(in.Projects)

	assignmentsByPerson := lo.GroupBy(in.Assignments, func(a *model.Assignment) model.ID {
		return a.PersonID
	})
	leaveByPerson := lo.GroupBy(in.Leave, func(l *model.Leave) model.ID {
		return l.PersonID
	})

	report := &ForecastReport{
		WeeksAhead:  weeks,
		TotalPeople: len(in.People),
		People:      make([]PersonForecast, 0, len(in.People)),
	}

	assignedPerWeek := make([]int, weeks)

	for _, p := range in.People {
		as := assignmentsByPerson[p.ID]

		active := lo.Filter(as, func(a *model.Assignment, _ int) bool {
			return model.OnOrAfter(a.EndDate, today)
		})

		endingSoon := []EndingAssignment{}
		var fullyAvailableAfter *string
		var latestEnd time.Time
		for _, a := range active {
			end, ok := model.ParseDate(a.EndDate)
			if !ok || end.After(horizon) {
				continue
			}

			endingSoon = append(endingSoon, EndingAssignment{
				Project: projectLabel(projects, a.ProjectID),
				EndDate: *a.EndDate,
			})

			if end.After(latestEnd) {
				latestEnd = end
				fullyAvailableAfter = a.EndDate
			}
		}

		leaves := []LeaveEntry{}
		for _, l := range leaveByPerson[p.ID] {
			if !model.OnOrAfter(l.EndDate, today) {
				continue
			}
			leaves = append(leaves, LeaveEntry{
				Type:      l.TypeName(),
				StartDate: l.StartDate,
				EndDate:   l.EndDate,
			})
		}

		for w := 0; w < weeks; w++ {
			weekStart := today.AddDate(0, 0, 7*w)
			weekEnd := weekStart.AddDate(0, 0, 6)

			assigned := lo.SomeBy(as, func(a *model.Assignment) bool {
				return model.OnOrBefore(a.StartDate, weekEnd) && model.OnOrAfter(a.EndDate, weekStart)
			})
			if assigned {
				assignedPerWeek[w]++
			}
		}

		if len(active) == 0 {
			report.CurrentlyUnassigned++
		}
		if len(endingSoon) > 0 {
			report.PeopleWithEndingAssignments++
		}

		report.People = append(report.People, PersonForecast{
			ID:                    p.ID,
			Name:                  p.DisplayName(),
			Team:                  teamNameFor(p, teams),
			ActiveAssignmentCount: len(active),
			EndingSoon:            endingSoon,
			UpcomingLeave:         leaves,
			FullyAvailableAfter:   fullyAvailableAfter,
		})
	}

	report.Weeks = make([]WeekBucket, weeks)
	for w := 0; w < weeks; w++ {
		assigned := assignedPerWeek[w]

		util := 0.0
		if report.TotalPeople > 0 {
			util = round2(float64(assigned) / float64(report.TotalPeople) * 100)
		}

		report.Weeks[w] = WeekBucket{
			Week:               w + 1,
			WeekStarting:       model.FormatDate(today.AddDate(0, 0, 7*w)),
			AssignedCount:      assigned,
			AvailableCount:     report.TotalPeople - assigned,
			UtilizationPercent: util,
		}
	}

	return report
}
