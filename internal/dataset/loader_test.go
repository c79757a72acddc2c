package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"triage-insights-go/internal/types"
)

func TestWriteLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics.xlsx")
	require.NoError(t, Write(path, Demo()))

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Demo(), ds)
}

func TestLoad_LooseHeadersAndSheetNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loose.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Symptom categories"))
	_, err := f.NewSheet("Risk distribution (pie)")
	require.NoError(t, err)
	_, err = f.NewSheet("Notes")
	require.NoError(t, err)

	// columns swapped and labelled differently
	require.NoError(t, f.SetSheetRow("Symptom categories", "A1", &[]any{"Patients", "Symptom Type"}))
	require.NoError(t, f.SetSheetRow("Symptom categories", "A2", &[]any{"12", "Cardiac"}))
	require.NoError(t, f.SetSheetRow("Symptom categories", "A4", &[]any{"3.0", "Other"}))
	require.NoError(t, f.SetSheetRow("Risk distribution (pie)", "A1", &[]any{"Level", "Share"}))
	require.NoError(t, f.SetSheetRow("Risk distribution (pie)", "A2", &[]any{"High Risk (Red)", "20%"}))
	require.NoError(t, f.SetSheetRow("Notes", "A1", &[]any{"ignored"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	ds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []types.CategoryCount{
		{Category: "Cardiac", Count: 12},
		{Category: "Other", Count: 3},
	}, ds.Categories)
	assert.Equal(t, []types.DistributionSlice{{RiskLevel: types.RiskHigh, Percentage: 20}}, ds.Distribution)
	assert.Empty(t, ds.Trend)
	assert.Empty(t, ds.Accuracy)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sheet   string
		rows    [][]any
		wantErr string
	}{
		{
			name:    "missing column",
			sheet:   SheetTrend,
			rows:    [][]any{{"Period", "Avg Risk"}},
			wantErr: "missing emergencies column",
		},
		{
			name:    "bad count",
			sheet:   SheetCategories,
			rows:    [][]any{{"Category", "Count"}, {"Cardiac", "many"}},
			wantErr: "row 2: count",
		},
		{
			name:    "unknown level",
			sheet:   SheetDistribution,
			rows:    [][]any{{"Risk Level", "Percentage"}, {"Low", 50}, {"Purple", 50}},
			wantErr: `row 3: unknown risk level "Purple"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.xlsx")
			f := excelize.NewFile()
			require.NoError(t, f.SetSheetName("Sheet1", tt.sheet))
			for i, row := range tt.rows {
				addr, err := excelize.CoordinatesToCellName(1, i+1)
				require.NoError(t, err)
				require.NoError(t, f.SetSheetRow(tt.sheet, addr, &row))
			}
			require.NoError(t, f.SaveAs(path))
			require.NoError(t, f.Close())

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestSheetKind(t *testing.T) {
	assert.Equal(t, kindCategories, sheetKind("Categories"))
	assert.Equal(t, kindTrend, sheetKind(" risktrend "))
	assert.Equal(t, kindAccuracy, sheetKind("Emergency Detection"))
	assert.Equal(t, kindDistribution, sheetKind("RiskDistribution"))
	assert.Equal(t, kindUnknown, sheetKind("Sheet1"))
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics.json")
	body := `{
		"categories": [{"category": "Cardiac", "count": 4}],
		"distribution": [{"risk_level": "High", "percentage": 25}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	ds, err := LoadAndSummarize(path)
	require.NoError(t, err)
	assert.Equal(t, DatasetSummary{Categories: 1, DistributionSlices: 1}, Summarize(ds))
	assert.Equal(t, types.RiskHigh, ds.Distribution[0].RiskLevel)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader("{"))
	assert.ErrorContains(t, err, "decode dataset")
}

func TestLoadAndSummarize_Workbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analytics.xlsx")
	require.NoError(t, Write(path, Demo()))

	ds, err := LoadAndSummarize(path)
	require.NoError(t, err)
	assert.Equal(t, DatasetSummary{Categories: 6, TrendPoints: 6, AccuracyPoints: 4, DistributionSlices: 3}, Summarize(ds))
}
