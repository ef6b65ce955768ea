package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-pivot/internal/model"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("RULES_FILE", "")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPlanCommand(t *testing.T) {
	out, err := execute(t, "plan",
		"--birthdate", "2000-03-23", "--finish", "2026-05-08",
		"--travel-months", "6", "--countries", "JP:Japan,pe")
	require.NoError(t, err)

	var res model.ScenarioResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "2032-03-01", res.LicenseDate.String())
	assert.Equal(t, 31.5, res.AgeAtLicense)
	require.Len(t, res.Itinerary, 2)
	assert.Equal(t, "PE", res.Itinerary[1].Country.Code)
}

func TestPlanCommandRejectsBadInput(t *testing.T) {
	_, err := execute(t, "plan", "--birthdate", "23/03/2000")
	assert.ErrorContains(t, err, "--birthdate")

	_, err = execute(t, "plan", "--birthdate", "2000-03-23", "--jurisdiction", "TX")
	assert.ErrorContains(t, err, "jurisdiction")
}

func TestRulesCheckCommand(t *testing.T) {
	out, err := execute(t, "rules", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "rule table OK (embedded)")

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jurisdictions:
  CA:
    name: California
    licenses:
      LMFT: {total_hours: 3000, direct_hours: 1750, min_weeks: 104, associate_title: AMFT}
`), 0o600))

	_, err = execute(t, "rules", "check", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CA/LPC: no requirements")
	rulesFile = ""
}
