package planapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/crewlens/crewlens/lib/model"
)

func (c *Client) ListPeople(ctx context.Context) ([]*model.Person, bool, error) {
	return fetchAll[*model.Person](ctx, c, "/people", nil)
}

func (c *Client) ListTeams(ctx context.Context) ([]*model.Team, bool, error) {
	return fetchAll[*model.Team](ctx, c, "/teams", nil)
}

func (c *Client) ListRoles(ctx context.Context) ([]*model.Role, bool, error) {
	return fetchAll[*model.Role](ctx, c, "/roles", nil)
}

func (c *Client) ListSkills(ctx context.Context) ([]*model.Skill, bool, error) {
	return fetchAll[*model.Skill](ctx, c, "/skills", nil)
}

func (c *Client) ListClients(ctx context.Context) ([]*model.Client, bool, error) {
	return fetchAll[*model.Client](ctx, c, "/clients", nil)
}

func (c *Client) ListProjects(ctx context.Context) ([]*model.Project, bool, error) {
	return fetchAll[*model.Project](ctx, c, "/projects", nil)
}

func (c *Client) ListAssignments(ctx context.Context) ([]*model.Assignment, bool, error) {
	return fetchAll[*model.Assignment](ctx, c, "/assignments", nil)
}

func (c *Client) ListPersonAssignments(ctx context.Context, personID model.ID) ([]*model.Assignment, bool, error) {
	q := url.Values{}
	q.Set("personId", personID.String())
	return fetchAll[*model.Assignment](ctx, c, "/assignments", q)
}

// ListActuals fetches timesheet entries recorded inside the window.
func (c *Client) ListActuals(ctx context.Context, from, to time.Time) ([]*model.Actual, bool, error) {
	q := url.Values{}
	q.Set("startDate", model.FormatDate(from))
	q.Set("endDate", model.FormatDate(to))
	return fetchAll[*model.Actual](ctx, c, "/actuals", q)
}

func (c *Client) ListLeave(ctx context.Context) ([]*model.Leave, bool, error) {
	return fetchAll[*model.Leave](ctx, c, "/leave", nil)
}

func (c *Client) GetPerson(ctx context.Context, id model.ID) (*model.Person, error) {
	var p model.Person
	if err := c.doJSON(ctx, fmt.Sprintf("/people/%v", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) ListPersonSkills(ctx context.Context, id model.ID) ([]*model.PersonSkill, bool, error) {
	return fetchAll[*model.PersonSkill](ctx, c, fmt.Sprintf("/people/%v/skills", id), nil)
}
