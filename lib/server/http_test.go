package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHTTPUtilization(t *testing.T) {
	t.Parallel()

	h := newTestServer(t).NewHTTPHandler()

	w := doGet(t, h, "/api/utilization?team=platform&days=5")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Summary struct {
			PeopleCount int `json:"peopleCount"`
		} `json:"summary"`
	}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Summary.PeopleCount)
}

func TestHTTPBadStatusIsBadRequest(t *testing.T) {
	t.Parallel()

	h := newTestServer(t).NewHTTPHandler()

	w := doGet(t, h, "/api/projects?status=bogus")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bogus")
}

func TestHTTPPersonRoutes(t *testing.T) {
	t.Parallel()

	h := newTestServer(t).NewHTTPHandler()

	w := doGet(t, h, "/api/people/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Smith")

	w = doGet(t, h, "/api/people/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHTTPSearch(t *testing.T) {
	t.Parallel()

	h := newTestServer(t).NewHTTPHandler()

	w := doGet(t, h, "/api/search?q=apollo")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Apollo")

	w = doGet(t, h, "/api/search")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"people":[]`)

	w = doGet(t, h, "/api/search?q=x&type=teams")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
