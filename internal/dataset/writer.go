package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"triage-insights-go/internal/types"
)

// Write saves ds as a workbook in the layout Load reads.
func Write(path string, ds types.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCategories); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetTrend, SheetAccuracy, SheetDistribution} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("new sheet %q: %w", name, err)
		}
	}

	tables := []struct {
		sheet string
		rows  [][]any
	}{
		{SheetCategories, categoryRows(ds.Categories)},
		{SheetTrend, trendRows(ds.Trend)},
		{SheetAccuracy, accuracyRows(ds.Accuracy)},
		{SheetDistribution, distributionRows(ds.Distribution)},
	}
	for _, t := range tables {
		for i, row := range t.rows {
			addr, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(t.sheet, addr, &row); err != nil {
				return fmt.Errorf("write %s row %d: %w", t.sheet, i+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func categoryRows(in []types.CategoryCount) [][]any {
	rows := [][]any{{"Category", "Count"}}
	for _, c := range in {
		rows = append(rows, []any{c.Category, c.Count})
	}
	return rows
}

func trendRows(in []types.TrendPoint) [][]any {
	rows := [][]any{{"Period", "Avg Risk", "Emergencies"}}
	for _, p := range in {
		rows = append(rows, []any{p.Period, p.AvgRisk, p.Emergencies})
	}
	return rows
}

func accuracyRows(in []types.AccuracyPoint) [][]any {
	rows := [][]any{{"Week", "Flagged", "Actual"}}
	for _, p := range in {
		rows = append(rows, []any{p.Week, p.Flagged, p.Actual})
	}
	return rows
}

func distributionRows(in []types.DistributionSlice) [][]any {
	rows := [][]any{{"Risk Level", "Percentage"}}
	for _, s := range in {
		rows = append(rows, []any{string(s.RiskLevel), s.Percentage})
	}
	return rows
}
