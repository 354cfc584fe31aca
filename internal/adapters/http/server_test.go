package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/gantry"
	httpAdapter "github.com/aretw0/gantry/internal/adapters/http"
	"github.com/aretw0/gantry/internal/catalog"
	"github.com/aretw0/gantry/internal/logging"
	"github.com/aretw0/gantry/internal/observability"
	"github.com/aretw0/gantry/pkg/domain"
)

func newTestServer(t *testing.T) (*httptest.Server, *gantry.Orchestrator) {
	t.Helper()

	cat := catalog.NewMemory()
	cat.Add(&domain.Recipe{
		ID:            "code-review",
		FirstStep:     "review",
		MaxIterations: 5,
		Steps: []domain.Step{
			{Name: "review", Outcomes: []domain.Tag{domain.TagComplete}},
		},
	})

	orc := gantry.New(cat)
	handler := httpAdapter.NewHandler(orc, observability.New(), logging.NewNop())

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, orc
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestServer_Recipes(t *testing.T) {
	srv, _ := newTestServer(t)

	var body struct {
		Recipes []string `json:"recipes"`
	}
	status := getJSON(t, srv.URL+"/recipes", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"code-review"}, body.Recipes)
}

func TestServer_GetRecipe(t *testing.T) {
	srv, _ := newTestServer(t)

	var recipe domain.Recipe
	status := getJSON(t, srv.URL+"/recipes/code-review", &recipe)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "code-review", recipe.ID)
	assert.Equal(t, 5, recipe.MaxIterations)
}

func TestServer_GetRecipe_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	status := getJSON(t, srv.URL+"/recipes/nope", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestServer_Runs(t *testing.T) {
	srv, orc := newTestServer(t)

	_, err := orc.StartRun(context.Background(), "s1", "code-review")
	require.NoError(t, err)

	var list struct {
		Sessions []string `json:"sessions"`
	}
	status := getJSON(t, srv.URL+"/runs", &list)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"s1"}, list.Sessions)

	var run domain.Run
	status = getJSON(t, srv.URL+"/runs/s1", &run)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "code-review", run.RecipeID)
	assert.Equal(t, 1, run.IterationCount)
}

func TestServer_GetRun_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	status := getJSON(t, srv.URL+"/runs/ghost", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestServer_Metrics(t *testing.T) {
	srv, _ := newTestServer(t)

	status := getJSON(t, srv.URL+"/metrics", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t)

	var body map[string]string
	status := getJSON(t, srv.URL+"/healthz", &body)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
