package server

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/crewlens/crewlens/lib/model"
)

// datasets holds whatever collections one operation needs. Sibling
// collections are fetched concurrently; pagination inside a single fetch
// stays sequential because each cursor comes from the previous response.
type datasets struct {
	people      []*model.Person
	assignments []*model.Assignment
	actuals     []*model.Actual
	teams       []*model.Team
	roles       []*model.Role
	skills      []*model.Skill
	clients     []*model.Client
	projects    []*model.Project
	leave       []*model.Leave

	truncated bool
}

type fetchStep func(ctx context.Context, d *datasets) (bool, error)

func (s *Server) fetch(ctx context.Context, steps ...fetchStep) (*datasets, error) {
	d := &datasets{}

	g, ctx := errgroup.WithContext(ctx)

	truncs := make([]bool, len(steps))
	for i, step := range steps {
		i, step := i, step
		g.Go(func() error {
			var err error
			truncs[i], err = step(ctx, d)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, t := range truncs {
		d.truncated = d.truncated || t
	}

	return d, nil
}

func (s *Server) fetchPeople(ctx context.Context, d *datasets) (bool, error) {
	var (
		tr  bool
		err error
	)
	d.people, tr, err = s.client.ListPeople(ctx)
	return tr, err
}

func (s *Server) fetchAssignments(ctx context.Context, d *datasets) (bool, error) {
	var (
		tr  bool
		err error
	)
	d.assignments, tr, err = s.client.ListAssignments(ctx)
	return tr, err
}

func (s *Server) fetchTeams(ctx context.Context, d *datasets) (bool, error) {
	var (
		tr  bool
		err error
	)
	d.teams, tr, err = s.client.ListTeams(ctx)
	return tr, err
}

func (s *Server) fetchRoles(ctx context.Context, d *datasets) (bool, error) {
	var (
		tr  bool
		err error
	)
	d.roles, tr, err = s.client.ListRoles(ctx)
	return tr, err
}

func (s *Server) fetchSkills(ctx context.Context, d *datasets) (bool, error) {
	var (
		tr  bool
		err error
	)
	d.skills, tr, err = s.client.ListSkills(ctx)
	return tr, err
}

func (s *Server) fetchClients(ctx context.Context, d *datasets) (bool, error) {
	var (
		tr  bool
		err error
	)
	d.clients, tr, err = s.client.ListClients(ctx)
	return tr, err
}

func (s *Server) fetchProjects(ctx context.Context, d *datasets) (bool, error) {
	var (
		tr  bool
		err error
	)
	d.projects, tr, err = s.client.ListProjects(ctx)
	return tr, err
}

func (s *Server) fetchLeave(ctx context.Context, d *datasets) (bool, error) {
	var (
		tr  bool
		err error
	)
	d.leave, tr, err = s.client.ListLeave(ctx)
	return tr, err
}

// fetchActuals fetches actuals for the trailing calendar window ending
// today.
func (s *Server) fetchActuals(days int) fetchStep {
	return func(ctx context.Context, d *datasets) (bool, error) {
		to := s.opts.Now()
		from := to.AddDate(0, 0, -days)

		var (
			tr  bool
			err error
		)
		d.actuals, tr, err = s.client.ListActuals(ctx, from, to)
		return tr, err
	}
}

// calendarSpan widens a working-day count to the calendar days needed to
// contain it, assuming 5 working days per 7.
func calendarSpan(workingDays int) int {
	return (workingDays*7 + 4) / 5
}
