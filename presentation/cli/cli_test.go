package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ksrtc_booker/domain/entities"
	"ksrtc_booker/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSearchURLDefaults(t *testing.T) {
	out, err := runCLI(t, "search-url", "--date", "2025-09-28")
	require.NoError(t, err)

	assert.Equal(t,
		"https://onlineksrtcswift.com/search?fromCity=298%7CBangalore&toCity=462%7CPalakkad&departDate=28-09-2025&mode=oneway&src=h&stationInFromCity=&stationInToCity=\n",
		out)
}

func TestSearchURLReversedTrip(t *testing.T) {
	out, err := runCLI(t, "search-url", "--from", "palakkad", "--to", "bangalore", "--date", "01-10-2025")
	require.NoError(t, err)
	assert.Contains(t, out, "fromCity=462%7CPalakkad&toCity=298%7CBangalore&departDate=01-10-2025")
}

func TestSearchURLUnknownCity(t *testing.T) {
	_, err := runCLI(t, "search-url", "--to", "Thrissur", "--date", "01-10-2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Thrissur")
}

func TestSearchURLConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
site:
  base_url: https://staging.example.test
booking:
  date: "05-10-2025"
`), 0644))

	out, err := runCLI(t, "--config", path, "search-url")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "https://staging.example.test/search?"), out)
	assert.Contains(t, out, "departDate=05-10-2025")
}

func TestReportsListAndShow(t *testing.T) {
	logs := t.TempDir()
	t.Setenv("KSRTC_LOGS_DIR", logs)

	out, err := runCLI(t, "reports")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs yet.")

	store, err := storage.NewReportStore(filepath.Join(logs, "reports"))
	require.NoError(t, err)
	require.NoError(t, store.Save(entities.RunReport{
		ID:            "abc",
		Strategy:      entities.StrategyURL,
		BusProvider:   "PALAKKAD DEPOT",
		TravelDate:    "28-09-2025",
		Status:        entities.StatusDegraded,
		Started:       time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC),
		SelectedSeats: []int{5},
	}))

	require.NoError(t, store.Save(entities.RunReport{
		ID:          "def",
		Strategy:    entities.StrategyForm,
		BusProvider: "PALAKKAD DEPOT",
		TravelDate:  "28-09-2025",
		Status:      entities.StatusFailed,
		Started:     time.Date(2025, 9, 21, 10, 0, 0, 0, time.UTC),
		Steps: []entities.StepResult{
			{Name: "open_home", Status: entities.StatusSucceeded},
			{Name: "select_bus", Status: entities.StatusFailed},
		},
	}))

	out, err = runCLI(t, "reports")
	require.NoError(t, err)
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "PALAKKAD DEPOT")
	assert.Contains(t, out, "degraded")
	assert.Contains(t, out, "FAILED AT")
	assert.Regexp(t, `def .*failed .*select_bus`, out)

	out, err = runCLI(t, "reports", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "degraded"`)

	_, err = runCLI(t, "reports", "missing")
	require.Error(t, err)
	assert.True(t, entities.IsKind(err, entities.KindNotFound))
}

func TestBookRejectsIncompleteRequest(t *testing.T) {
	t.Setenv("KSRTC_LOGS_DIR", t.TempDir())

	// no passenger configured: fails before any browser is launched
	_, err := runCLI(t, "book", "--date", "28-09-2025")
	require.Error(t, err)
	assert.True(t, entities.IsKind(err, entities.KindInvalidConfig))
	assert.Contains(t, err.Error(), "passenger name")
}

func TestBookRejectsBadSeats(t *testing.T) {
	_, err := runCLI(t, "book", "--seats", "3,x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seat number")
}

func TestMissingEnvFile(t *testing.T) {
	_, err := runCLI(t, "--env-file", filepath.Join(t.TempDir(), "nope.env"), "search-url", "--date", "28-09-2025")
	require.Error(t, err)
	assert.True(t, entities.IsKind(err, entities.KindInvalidConfig))
}
