package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"triage-insights-go/internal/types"
)

// Sheet names written by Write. Load also accepts looser names, see sheetKind.
const (
	SheetCategories   = "Categories"
	SheetTrend        = "RiskTrend"
	SheetAccuracy     = "DetectionAccuracy"
	SheetDistribution = "RiskDistribution"
)

type kind int

const (
	kindUnknown kind = iota
	kindCategories
	kindTrend
	kindAccuracy
	kindDistribution
)

func sheetKind(name string) kind {
	n := strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.Contains(n, "distribution"):
		return kindDistribution
	case strings.Contains(n, "accuracy") || strings.Contains(n, "detection") || strings.Contains(n, "emergency"):
		return kindAccuracy
	case strings.Contains(n, "trend"):
		return kindTrend
	case strings.Contains(n, "categor"):
		return kindCategories
	}
	return kindUnknown
}

// Load reads an analytics workbook. Each of the four collections lives on its
// own sheet; sheets and columns are located by name heuristics. A missing
// sheet yields an empty collection.
func Load(path string) (types.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return types.Dataset{}, fmt.Errorf("no sheets")
	}

	var ds types.Dataset
	for _, sheet := range sheets {
		k := sheetKind(sheet)
		if k == kindUnknown {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return types.Dataset{}, fmt.Errorf("read rows of %q: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		switch k {
		case kindCategories:
			ds.Categories, err = parseCategories(rows)
		case kindTrend:
			ds.Trend, err = parseTrend(rows)
		case kindAccuracy:
			ds.Accuracy, err = parseAccuracy(rows)
		case kindDistribution:
			ds.Distribution, err = parseDistribution(rows)
		}
		if err != nil {
			return types.Dataset{}, fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}
	return ds, nil
}

// columns maps a header row to column indices. Each matcher is tried in order
// and claims the first unclaimed header it matches; -1 means not found.
func columns(header []string, matchers ...func(string) bool) []int {
	idx := make([]int, len(matchers))
	claimed := make(map[int]bool)
	for m, match := range matchers {
		idx[m] = -1
		for i, h := range header {
			if claimed[i] {
				continue
			}
			if match(strings.ToLower(strings.TrimSpace(h))) {
				idx[m] = i
				claimed[i] = true
				break
			}
		}
	}
	return idx
}

func containsAny(subs ...string) func(string) bool {
	return func(h string) bool {
		for _, s := range subs {
			if strings.Contains(h, s) {
				return true
			}
		}
		return false
	}
}

func requireColumns(idx []int, names ...string) error {
	for i, n := range names {
		if idx[i] < 0 {
			return fmt.Errorf("missing %s column", n)
		}
	}
	return nil
}

func cell(r []string, i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[i])
}

func blank(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	// spreadsheet numbers sometimes come back as "12.0"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSuffix(s, "%")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseCategories(rows [][]string) ([]types.CategoryCount, error) {
	idx := columns(rows[0],
		containsAny("count", "patients", "total"),
		containsAny("category", "symptom", "type", "name"),
	)
	if err := requireColumns(idx, "count", "category"); err != nil {
		return nil, err
	}
	var out []types.CategoryCount
	for i, r := range rows[1:] {
		if blank(r) {
			continue
		}
		n, err := atoi(cell(r, idx[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: count: %w", i+2, err)
		}
		out = append(out, types.CategoryCount{Category: cell(r, idx[1]), Count: n})
	}
	return out, nil
}

func parseTrend(rows [][]string) ([]types.TrendPoint, error) {
	idx := columns(rows[0],
		containsAny("emergenc"),
		containsAny("risk", "avg"),
		containsAny("period", "month", "date"),
	)
	if err := requireColumns(idx, "emergencies", "average risk", "period"); err != nil {
		return nil, err
	}
	var out []types.TrendPoint
	for i, r := range rows[1:] {
		if blank(r) {
			continue
		}
		em, err := atoi(cell(r, idx[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: emergencies: %w", i+2, err)
		}
		risk, err := parseFloat(cell(r, idx[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: average risk: %w", i+2, err)
		}
		out = append(out, types.TrendPoint{Period: cell(r, idx[2]), AvgRisk: risk, Emergencies: em})
	}
	return out, nil
}

func parseAccuracy(rows [][]string) ([]types.AccuracyPoint, error) {
	idx := columns(rows[0],
		containsAny("flag"),
		containsAny("actual", "confirm"),
		containsAny("week", "period"),
	)
	if err := requireColumns(idx, "flagged", "actual", "week"); err != nil {
		return nil, err
	}
	var out []types.AccuracyPoint
	for i, r := range rows[1:] {
		if blank(r) {
			continue
		}
		flagged, err := atoi(cell(r, idx[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: flagged: %w", i+2, err)
		}
		actual, err := atoi(cell(r, idx[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: actual: %w", i+2, err)
		}
		out = append(out, types.AccuracyPoint{Week: cell(r, idx[2]), Flagged: flagged, Actual: actual})
	}
	return out, nil
}

func parseDistribution(rows [][]string) ([]types.DistributionSlice, error) {
	idx := columns(rows[0],
		containsAny("percent", "value", "share", "%"),
		containsAny("level", "risk", "name"),
	)
	if err := requireColumns(idx, "percentage", "risk level"); err != nil {
		return nil, err
	}
	var out []types.DistributionSlice
	for i, r := range rows[1:] {
		if blank(r) {
			continue
		}
		level, ok := types.ParseRiskLevel(cell(r, idx[1]))
		if !ok {
			return nil, fmt.Errorf("row %d: unknown risk level %q", i+2, cell(r, idx[1]))
		}
		pct, err := parseFloat(cell(r, idx[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: percentage: %w", i+2, err)
		}
		out = append(out, types.DistributionSlice{RiskLevel: level, Percentage: pct})
	}
	return out, nil
}
