package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/aquilax/truncate"
	"github.com/gertd/go-pluralize"
	"golang.org/x/exp/constraints"

	"github.com/crewlens/crewlens/lib/utils"
)

var plural = pluralize.NewClient()

// fetchWithSpinner runs one server operation with a spinner ticking as
// pages arrive from the planning API.
func fetchWithSpinner[T any](ctx *cmdContext, what string, f func(context.Context) (T, error)) (T, error) {
	bar := utils.NewFetchSpinner(fmt.Sprintf("Fetching %v", what))

	ctx.onPage = func(path string, page, items int) {
		// Empty pages still tick so the spinner shows progress.
		_ = bar.Add(utils.Max(items, 1))
	}
	defer func() {
		ctx.onPage = nil
		_ = bar.Finish()
		fmt.Println()
	}()

	return f(context.Background())
}

func sortBy[T any, R constraints.Ordered](col []T, get func(T) R, asc bool) {
	if asc {
		sort.SliceStable(col, func(i, j int) bool {
			return get(col[i]) < get(col[j])
		})
	} else {
		sort.SliceStable(col, func(i, j int) bool {
			return get(col[i]) > get(col[j])
		})
	}
}

func shorten(s string) string {
	return truncate.Truncate(s, 40, "...", truncate.PositionEnd)
}

func countOf(n int, word string) string {
	return plural.Pluralize(word, n, true)
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
