package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covid-estimator/internal/model"
	"covid-estimator/internal/validation"
)

const report = `{
	"region": {"name": "Test", "avgAge": 30, "avgDailyIncomeInUSD": 1.5, "avgDailyIncomePopulation": 0.5},
	"periodType": "days",
	"timeToElapse": 10,
	"reportedCases": 10,
	"population": 1000000,
	"totalHospitalBeds": 1000
}`

func runEstimate(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"estimate"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimateFromStdin(t *testing.T) {
	out, err := runEstimate(t, report)
	require.NoError(t, err)

	var result model.OutputReport
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, model.Count(800), result.Impact.InfectionsByRequestedTime)
	assert.Equal(t, model.Count(-250), result.SevereImpact.HospitalBedsByRequestedTime)
}

func TestEstimateFromFileAsXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(report), 0o600))

	out, err := runEstimate(t, "", "--file", path, "--format", "xml")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<infectionsByRequestedTime>4000</infectionsByRequestedTime>")
}

func TestEstimateDemo(t *testing.T) {
	out, err := runEstimate(t, "", "--demo")
	require.NoError(t, err)

	var result model.OutputReport
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Africa", result.Data.Region.Name)
	assert.Equal(t, model.Count(85900), result.SevereImpact.CurrentlyInfected)
}

func TestEstimateInvalidInput(t *testing.T) {
	_, err := runEstimate(t, `{"periodType":"days"}`)

	var inputErr *validation.InputValidationError
	require.True(t, errors.As(err, &inputErr), "expected InputValidationError, got %v", err)
}

func TestEstimateOptionErrors(t *testing.T) {
	_, err := runEstimate(t, report, "--format", "yaml")
	assert.ErrorContains(t, err, "unsupported format")

	_, err = runEstimate(t, "", "--demo", "--file", "x.json")
	assert.ErrorContains(t, err, "mutually exclusive")

	_, err = runEstimate(t, "", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading report")
}
