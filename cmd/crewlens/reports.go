package main

import (
	"context"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/crewlens/crewlens/lib/filters"
	"github.com/crewlens/crewlens/lib/model"
	"github.com/crewlens/crewlens/lib/reports"
	"github.com/crewlens/crewlens/lib/server"
)

type UtilizationCmd struct {
	Team string `short:"t" help:"Only teams whose name matches this. Supports substrings, re: regexps and * globs."`
	Days int    `short:"d" help:"Window length in working days." default:"20"`
}

func (c *UtilizationCmd) Run(ctx *cmdContext) error {
	// Substring rules go to the server as-is. Regexps and globs fetch
	// everyone and match locally.
	teamFilter := c.Team
	local := strings.HasPrefix(c.Team, "re:") || strings.Contains(c.Team, "*")
	if local {
		teamFilter = ""
	}

	result, err := fetchWithSpinner(ctx, "utilization data", func(goCtx context.Context) (*server.UtilizationResult, error) {
		return ctx.server.TeamUtilization(goCtx, teamFilter, c.Days)
	})
	if err != nil {
		return err
	}

	if local {
		matches, err := filters.ParseStringFilter(c.Team)
		if err != nil {
			return err
		}

		result.Teams = lo.Filter(result.Teams, func(t reports.TeamUtilization, _ int) bool {
			return matches(t.Team)
		})
		result.People = lo.Filter(result.People, func(p reports.PersonUtilization, _ int) bool {
			return matches(p.Team)
		})

		result.Summary.PeopleCount = len(result.People)
		result.Summary.TotalBillableMinutes = lo.SumBy(result.People, func(p reports.PersonUtilization) int { return p.BillableMinutes })
		result.Summary.TotalNonbillableMinutes = lo.SumBy(result.People, func(p reports.PersonUtilization) int { return p.NonbillableMinutes })
		result.Summary.AvgUtilizationPercent = 0
		if len(result.People) > 0 {
			total := lo.SumBy(result.People, func(p reports.PersonUtilization) float64 { return p.UtilizationPercent })
			result.Summary.AvgUtilizationPercent = total / float64(len(result.People))
		}
	}

	ctx.console.Printf("%v, %.1f%% average utilization\n",
		countOf(result.Summary.PeopleCount, "person"),
		result.Summary.AvgUtilizationPercent)
	ctx.console.Printf("Billable: %v min, non-billable: %v min\n",
		humanize.Comma(int64(result.Summary.TotalBillableMinutes)),
		humanize.Comma(int64(result.Summary.TotalNonbillableMinutes)))

	for _, team := range result.Teams {
		ctx.console.Printf("   %v: %v, %.1f%%\n",
			team.Team, countOf(team.PeopleCount, "person"), team.AvgUtilizationPercent)
	}

	people := result.People
	sortBy(people, func(p reports.PersonUtilization) float64 { return p.UtilizationPercent }, false)

	for _, p := range people {
		ctx.console.Printf("      %v (%v): %.1f%% over %v\n",
			shorten(p.Name), p.Team, p.UtilizationPercent,
			countOf(p.AssignmentCount, "assignment"))
	}

	warnTruncated(ctx, result.ResultsTruncated)

	return nil
}

type ProjectsCmd struct {
	Status string `short:"s" help:"Project status: active, tentative, archived or all." default:"all"`
}

func (c *ProjectsCmd) Run(ctx *cmdContext) error {
	result, err := fetchWithSpinner(ctx, "project data", func(goCtx context.Context) (*server.OverviewResult, error) {
		return ctx.server.ProjectOverview(goCtx, c.Status)
	})
	if err != nil {
		return err
	}

	ctx.console.Printf("%v\n", countOf(result.Count, "project"))

	for _, p := range result.Projects {
		ctx.console.Printf("   %v (client %v, team %v)\n",
			shorten(p.Name), orDash(p.Client), orDash(p.Team))
		ctx.console.Printf("      %v, budget %v min, actual %v min\n",
			countOf(len(p.AssignedPeople), "person"),
			humanize.Comma(int64(p.BudgetMinutes)),
			humanize.Comma(int64(p.ActualMinutes)))

		if p.BudgetVsActualPercent != nil {
			ctx.console.Printf("      %.1f%% of budget used\n", *p.BudgetVsActualPercent)
		}
	}

	warnTruncated(ctx, result.ResultsTruncated)

	return nil
}

type ForecastCmd struct {
	Weeks int `short:"w" help:"Forecast horizon in weeks." default:"8"`
}

func (c *ForecastCmd) Run(ctx *cmdContext) error {
	result, err := fetchWithSpinner(ctx, "forecast data", func(goCtx context.Context) (*server.ForecastResult, error) {
		return ctx.server.CapacityForecast(goCtx, c.Weeks)
	})
	if err != nil {
		return err
	}

	ctx.console.Printf("%v, %v unassigned now, %v with assignments ending within %v\n",
		countOf(result.TotalPeople, "person"),
		result.CurrentlyUnassigned,
		result.PeopleWithEndingAssignments,
		countOf(result.WeeksAhead, "week"))

	for _, w := range result.Weeks {
		ctx.console.Printf("   week of %v: %v assigned, %v available (%.1f%%)\n",
			w.WeekStarting, w.AssignedCount, w.AvailableCount, w.UtilizationPercent)
	}

	for _, p := range result.People {
		if len(p.EndingSoon) == 0 && len(p.UpcomingLeave) == 0 {
			continue
		}

		ctx.console.Printf("   %v (%v)\n", shorten(p.Name), p.Team)
		for _, e := range p.EndingSoon {
			ctx.console.Printf("      %v ends %v\n", shorten(e.Project), e.EndDate)
		}
		for _, l := range p.UpcomingLeave {
			ctx.console.Printf("      %v from %v to %v\n", l.Type, orDash(l.StartDate), orDash(l.EndDate))
		}
	}

	warnTruncated(ctx, result.ResultsTruncated)

	return nil
}

type PersonCmd struct {
	ID model.ID `arg:"" help:"ID of the person."`
}

func (c *PersonCmd) Run(ctx *cmdContext) error {
	result, err := fetchWithSpinner(ctx, "person data", func(goCtx context.Context) (*server.PersonDetailResult, error) {
		return ctx.server.PersonDetails(goCtx, c.ID)
	})
	if err != nil {
		return err
	}

	ctx.console.Printf("%v", result.Name)
	if result.Email != "" {
		ctx.console.Printf(" <%v>", result.Email)
	}
	ctx.console.Printf("\n")

	ctx.console.Printf("   team: %v, role: %v\n", orDash(result.Team), result.Role)

	for _, s := range result.Skills {
		ctx.console.Printf("   skill: %v %v\n", s.Name, s.Level)
	}

	for _, a := range result.Assignments {
		ctx.console.Printf("   %v: %v min/day, %v to %v\n",
			shorten(a.Project), a.MinutesPerDay, orDash(a.StartDate), orDash(a.EndDate))
	}

	warnTruncated(ctx, result.ResultsTruncated)

	return nil
}

type SearchCmd struct {
	Query string `arg:"" help:"Substring to search for."`
	Type  string `short:"t" help:"Resource type: people, projects, clients or all." default:"all"`
}

func (c *SearchCmd) Run(ctx *cmdContext) error {
	result, err := fetchWithSpinner(ctx, "search data", func(goCtx context.Context) (*server.SearchResult, error) {
		return ctx.server.Search(goCtx, c.Query, c.Type)
	})
	if err != nil {
		return err
	}

	for _, rtype := range []string{reports.SearchPeople, reports.SearchProjects, reports.SearchClients} {
		matches, ok := result.Results[rtype]
		if !ok {
			continue
		}

		ctx.console.Printf("%v: %v\n", rtype, len(matches))
		for _, m := range matches {
			if m.Email != "" {
				ctx.console.Printf("   %v <%v> (%v)\n", shorten(m.Name), m.Email, m.ID)
			} else {
				ctx.console.Printf("   %v (%v)\n", shorten(m.Name), m.ID)
			}
		}
	}

	warnTruncated(ctx, result.ResultsTruncated)

	return nil
}

func warnTruncated(ctx *cmdContext, truncated bool) {
	if truncated {
		ctx.console.Printf("Some listings hit the page cap, results may be incomplete.\n")
	}
}
