// Package reports implements the aggregation engine: pure functions that
// join already-fetched planning collections and compute derived metrics.
// No function here performs I/O. Unresolved foreign keys degrade to nil or
// a placeholder label instead of failing, since the paginated fetch may
// yield an incomplete universe of referenced records.
package reports

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"

	"github.com/crewlens/crewlens/lib/model"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func foldString(s string) string {
	return cases.Fold().String(s)
}

func containsFold(s, substr string) bool {
	return strings.Contains(foldString(s), foldString(substr))
}

// UtilizationPercent is billable over available as a rounded percentage.
// Zero available minutes means zero utilization, never a division by zero.
func UtilizationPercent(billableMinutes, availableMinutes int) float64 {
	if availableMinutes <= 0 {
		return 0
	}
	return round2(float64(billableMinutes) / float64(availableMinutes) * 100)
}

// BudgetVsActualPercent is actual over budget as a rounded percentage, or
// nil when there is no budget. Never 0% or infinite for a zero budget.
func BudgetVsActualPercent(actualMinutes, budgetMinutes int) *float64 {
	if budgetMinutes <= 0 {
		return nil
	}
	v := round2(float64(actualMinutes) / float64(budgetMinutes) * 100)
	return &v
}

func teamNameFor(p *model.Person, teams map[model.ID]*model.Team) string {
	if id := p.PrimaryTeamID(); id != nil {
		if t := teams[*id]; t != nil {
			return t.Name
		}
	}
	return "Unassigned"
}

func projectLabel(projects map[model.ID]*model.Project, id model.ID) string {
	if p := projects[id]; p != nil {
		return p.Name
	}
	return fmt.Sprintf("Project %v", id)
}

func personLabel(people map[model.ID]*model.Person, id model.ID) string {
	if p := people[id]; p != nil {
		return p.DisplayName()
	}
	return fmt.Sprintf("Person %v", id)
}
