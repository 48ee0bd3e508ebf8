package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathfinderhq/pathfinder/internal/normalize"
	"github.com/pathfinderhq/pathfinder/internal/repository"
	"github.com/pathfinderhq/pathfinder/internal/service"
	"github.com/pathfinderhq/pathfinder/internal/testutil"
)

func newTestApp(t *testing.T) (*App, repository.ConsultationRepo) {
	t.Helper()
	cat := testutil.TinyCatalog()
	repo := repository.NewSQLiteConsultationRepo(testutil.NewTestDB(t))
	return &App{
		Advisor:       service.NewAdvisorService(cat, normalize.NewKeywordNormalizer(cat.Synonyms), repo, nil),
		Careers:       service.NewCareerService(cat),
		History:       service.NewHistoryService(repo),
		Catalog:       cat,
		IsInteractive: func() bool { return false },
	}, repo
}

func execute(t *testing.T, app *App, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if stdin != "" {
		root.SetIn(strings.NewReader(stdin))
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCareersListCmd(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "", "careers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Builder")
	assert.Contains(t, out, "Painter")
	assert.Contains(t, out, "requires:")
	assert.Contains(t, out, "skill a, skill b")
}

func TestCareersShowCmd(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "", "careers", "show", "Mixed")
	require.NoError(t, err)
	assert.Contains(t, out, "Mixed")
	assert.Contains(t, out, "skill a, skill d")
	assert.Contains(t, out, "prefers:")
}

func TestCareersShowCmd_Unknown(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := execute(t, app, "", "careers", "show", "Astronaut")
	assert.ErrorContains(t, err, "unknown career")
}

func TestQuestionsCmd(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "", "questions")
	require.NoError(t, err)
	assert.Contains(t, out, "q_ab")
	assert.Contains(t, out, "a or b?")
	assert.Contains(t, out, "q_d")
}

func TestHistoryListCmd_Empty(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No consultations yet")
}

func TestHistoryCmds(t *testing.T) {
	app, repo := newTestApp(t)
	c := testutil.NewTestConsultation("abcdef1234567890")
	require.NoError(t, repo.Create(context.Background(), c))

	out, err := execute(t, app, "", "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "abcdef12", "list shows the shortened id")
	assert.Contains(t, out, "Builder")

	out, err = execute(t, app, "", "history", "show", "abcdef1234567890")
	require.NoError(t, err)
	assert.Contains(t, out, "Suggested:")
	assert.Contains(t, out, "Questions answered: 3")
	assert.Contains(t, out, "skill a, skill b")

	out, err = execute(t, app, "", "history", "rm", "abcdef1234567890")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted consultation")

	_, err = execute(t, app, "", "history", "rm", "abcdef1234567890")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestHistoryShowCmd_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := execute(t, app, "", "history", "show", "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestQuizCmd_PlainMode(t *testing.T) {
	app, repo := newTestApp(t)

	out, err := execute(t, app, "A\nYes\nNo\nYes\n", "quiz")
	require.NoError(t, err)
	assert.Contains(t, out, "Q1.")
	assert.Contains(t, out, "a or b?")
	assert.Contains(t, out, "Career Advice")
	assert.Contains(t, out, "Builder")
	assert.Contains(t, out, "4 question(s) answered")

	stored, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, []string{"Builder"}, stored[0].Suggested)
}

func TestQuizCmd_PlainModeReprompts(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "mumble\nA\nYes\nNo\nYes\n", "quiz")
	require.NoError(t, err)
	assert.Contains(t, out, "I didn't catch that")
	assert.Contains(t, out, "Career Advice")
}

func TestQuizCmd_PlainModeSkipsBlankLines(t *testing.T) {
	app, _ := newTestApp(t)

	out, err := execute(t, app, "\n\nA\nYes\nNo\nYes\n", "quiz")
	require.NoError(t, err)
	assert.Contains(t, out, "Career Advice")
}

func TestValidateCmd_BuiltInCatalog(t *testing.T) {
	t.Setenv("PATHFINDER_CATALOG", "")
	app, _ := newTestApp(t)

	out, err := execute(t, app, "", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog OK")
}

func TestValidateCmd_BrokenCatalogFile(t *testing.T) {
	broken := `
attributes:
  zeal: enthusiasm
careers:
  - name: Promoter
    required: [missing]
questions:
  - id: q_zeal
    prompt: Enthusiastic?
    options:
      - label: "Yes"
        attribute: zeal
      - label: "No"
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(broken), 0o644))
	app, _ := newTestApp(t)

	out, err := execute(t, app, "", "validate", "--catalog", path)
	require.Error(t, err)
	assert.Contains(t, out, "Catalog is invalid:")
	assert.Contains(t, out, `"missing" is not declared`)
}
