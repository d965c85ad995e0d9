package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewlens/crewlens/lib/planapi"
)

// stubPlanAPI serves a fixed dataset: two people on two teams, one active
// and one archived project, assignments, actuals and leave.
func stubPlanAPI(t *testing.T) *httptest.Server {
	pages := map[string]string{
		"/people": `{"values": [
			{"id": 1, "firstName": "Alice", "lastName": "Smith", "email": "alice@corp.io", "teamId": 10, "role": "Engineer"},
			{"id": 2, "firstName": "Bob", "lastName": "Stone", "email": "bob@corp.io", "teamId": 11}
		]}`,
		"/teams": `{"values": [
			{"id": 10, "name": "Platform"},
			{"id": 11, "name": "Mobile"}
		]}`,
		"/roles": `{"values": [
			{"id": 20, "name": "Tech Lead"}
		]}`,
		"/skills": `{"values": [
			{"id": 30, "name": "Go"}
		]}`,
		"/clients": `{"values": [
			{"id": 40, "name": "Acme Corp"}
		]}`,
		"/projects": `{"values": [
			{"id": 50, "name": "Apollo", "clientId": 40, "teamId": 10, "isConfirmed": true, "pricingModel": 0},
			{"id": 51, "name": "Borealis", "isArchived": true}
		]}`,
		"/assignments": `{"values": [
			{"personId": 1, "projectId": 50, "roleId": 20, "minutesPerDay": 480}
		]}`,
		"/actuals": `{"values": [
			{"personId": 1, "projectId": 50, "date": "2024-06-03", "billableMinutes": 480, "nonbillableMinutes": 60}
		]}`,
		"/leave": `{"values": [
			{"personId": 2, "startDate": "2024-06-10", "endDate": "2024-06-14", "leaveType": "Vacation"}
		]}`,
		"/people/1":        `{"id": 1, "firstName": "Alice", "lastName": "Smith", "email": "alice@corp.io", "teamId": 10, "role": "Engineer"}`,
		"/people/1/skills": `{"values": [{"skillId": 30, "level": "expert"}, {"skillId": 99}]}`,
	}

	src := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(src.Close)

	return src
}

func newTestServer(t *testing.T) *Server {
	src := stubPlanAPI(t)

	log := logrus.New()
	log.SetOutput(io.Discard)

	client := planapi.NewClient(planapi.Options{
		BaseURL: src.URL,
		APIKey:  "test-key",
		Logger:  log,
	})

	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	return New(client, log, &Options{Now: func() time.Time { return now }})
}

func TestTeamUtilizationFansOut(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	result, err := s.TeamUtilization(context.Background(), "", 0)
	require.Nil(t, err)

	assert.Equal(t, 2, result.Summary.PeopleCount)
	assert.Equal(t, 480, result.Summary.TotalBillableMinutes)
	assert.False(t, result.ResultsTruncated)

	result, err = s.TeamUtilization(context.Background(), "platform", 0)
	require.Nil(t, err)

	assert.Equal(t, 1, result.Summary.PeopleCount)
	assert.Equal(t, "Alice Smith", result.People[0].Name)
}

func TestProjectOverviewStatusFilter(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	result, err := s.ProjectOverview(context.Background(), "active")
	require.Nil(t, err)
	require.Equal(t, 1, result.Count)

	p := result.Projects[0]
	assert.Equal(t, "Apollo", p.Name)
	require.NotNil(t, p.Client)
	assert.Equal(t, "Acme Corp", *p.Client)
	require.NotNil(t, p.PricingModel)
	assert.Equal(t, "Time & Materials", *p.PricingModel)

	result, err = s.ProjectOverview(context.Background(), "archived")
	require.Nil(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "Borealis", result.Projects[0].Name)

	result, err = s.ProjectOverview(context.Background(), "all")
	require.Nil(t, err)
	assert.Equal(t, 2, result.Count)
}

func TestProjectOverviewRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	_, err := s.ProjectOverview(context.Background(), "cancelled")
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrBadParam)
	assert.ErrorContains(t, err, "cancelled")
}

func TestCapacityForecast(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	result, err := s.CapacityForecast(context.Background(), 0)
	require.Nil(t, err)

	assert.Equal(t, 8, result.WeeksAhead)
	assert.Equal(t, 2, result.TotalPeople)
	assert.Equal(t, 1, result.CurrentlyUnassigned)
	require.Len(t, result.People, 2)

	bob := result.People[1]
	assert.Equal(t, "Bob Stone", bob.Name)
	require.Len(t, bob.UpcomingLeave, 1)
	assert.Equal(t, "Vacation", bob.UpcomingLeave[0].Type)
}

func TestPersonDetails(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	result, err := s.PersonDetails(context.Background(), 1)
	require.Nil(t, err)

	assert.Equal(t, "Alice Smith", result.Name)
	require.NotNil(t, result.Team)
	assert.Equal(t, "Platform", *result.Team)

	require.Len(t, result.Skills, 2)
	assert.Equal(t, "Go", result.Skills[0].Name)
	assert.Equal(t, "expert", result.Skills[0].Level)
	assert.Equal(t, "Skill 99", result.Skills[1].Name)

	require.Len(t, result.Assignments, 1)
	assert.Equal(t, "Apollo", result.Assignments[0].Project)
	require.NotNil(t, result.Assignments[0].Role)
	assert.Equal(t, "Tech Lead", *result.Assignments[0].Role)
}

func TestPersonDetailsUnknownPerson(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	_, err := s.PersonDetails(context.Background(), 404)
	require.NotNil(t, err)
	assert.ErrorContains(t, err, "404")
}

func TestSearch(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	result, err := s.Search(context.Background(), "apollo", "")
	require.Nil(t, err)

	assert.Len(t, result.Results["people"], 0)
	require.Len(t, result.Results["projects"], 1)
	assert.Equal(t, "Apollo", result.Results["projects"][0].Name)
	assert.Len(t, result.Results["clients"], 0)

	result, err = s.Search(context.Background(), "acme", "clients")
	require.Nil(t, err)

	require.Len(t, result.Results["clients"], 1)
	assert.NotContains(t, result.Results, "people")
}

func TestSearchEmptyQueryYieldsEmptyLists(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	result, err := s.Search(context.Background(), "", "")
	require.Nil(t, err)

	require.Len(t, result.Results, 3)
	assert.Len(t, result.Results["people"], 0)
	assert.Len(t, result.Results["projects"], 0)
	assert.Len(t, result.Results["clients"], 0)

	result, err = s.Search(context.Background(), "", "people")
	require.Nil(t, err)

	require.Len(t, result.Results, 1)
	assert.Len(t, result.Results["people"], 0)
}

func TestSearchRejectsUnknownResourceType(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	_, err := s.Search(context.Background(), "x", "teams")
	assert.ErrorIs(t, err, ErrBadParam)

	_, err = s.Search(context.Background(), "", "teams")
	assert.ErrorIs(t, err, ErrBadParam)
}
