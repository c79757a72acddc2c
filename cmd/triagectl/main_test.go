package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"triage-insights-go/internal/processor"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExplainCmdFlags(t *testing.T) {
	f := newExplainCmd().Flags()

	outputFmt, _ := f.GetString("output")
	assert.Equal(t, "text", outputFmt)

	for _, flag := range []string{"symptoms", "duration", "severity", "risk-factor", "output"} {
		assert.NotNil(t, f.Lookup(flag), "missing flag: %s", flag)
	}
}

func TestAggregateCmdFlags(t *testing.T) {
	f := newAggregateCmd().Flags()
	for _, flag := range []string{"dataset", "output"} {
		assert.NotNil(t, f.Lookup(flag), "missing flag: %s", flag)
	}
}

func TestExplainCmd_JSON(t *testing.T) {
	t.Setenv("TRIAGE_CONFIG", filepath.Join(t.TempDir(), "none.yaml"))

	out, err := execute(t, newExplainCmd(),
		"--symptoms", "Shortness of breath",
		"--severity", "3",
		"--risk-factor", "Asthma",
		"--risk-factor", "Asthma",
		"--output", "json",
	)
	require.NoError(t, err)

	var res processor.ExplanationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Sections, 5)
	assert.Equal(t, "Acute onset", res.Assessment.Duration)
	assert.Equal(t, []string{"Asthma", "Asthma"}, res.Sections[3].Items)
}

func TestExplainCmd_RequiresSymptoms(t *testing.T) {
	_, err := execute(t, newExplainCmd())
	assert.ErrorContains(t, err, "symptoms")
}

func TestExplainCmd_UnknownOutput(t *testing.T) {
	_, err := execute(t, newExplainCmd(), "--symptoms", "x", "--output", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestAggregateCmd_Demo(t *testing.T) {
	out, err := execute(t, newAggregateCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "Total patients:       524")
}

func TestDatasetTemplateThenAggregate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.xlsx")

	out, err := execute(t, newDatasetCmd(), "template", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	out, err = execute(t, newAggregateCmd(), "--dataset", path, "--output", "json")
	require.NoError(t, err)

	var res processor.DashboardResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 73, res.Snapshot.EmergencyCaseEstimate)
}
