package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"triage-insights-go/internal/logger"
	"triage-insights-go/internal/types"
)

type DatasetSummary struct {
	Categories         int `json:"categories"`
	TrendPoints        int `json:"trend_points"`
	AccuracyPoints     int `json:"accuracy_points"`
	DistributionSlices int `json:"distribution_slices"`
}

// Summarize counts the rows of each collection, for startup logging.
func Summarize(ds types.Dataset) DatasetSummary {
	return DatasetSummary{
		Categories:         len(ds.Categories),
		TrendPoints:        len(ds.Trend),
		AccuracyPoints:     len(ds.Accuracy),
		DistributionSlices: len(ds.Distribution),
	}
}

// Decode reads a JSON dataset.
func Decode(r io.Reader) (types.Dataset, error) {
	var ds types.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return types.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}

// LoadJSON reads a JSON dataset file.
func LoadJSON(path string) (types.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Dataset{}, fmt.Errorf("open: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// LoadAndSummarize picks the reader by file extension (.json, otherwise a
// workbook) and logs what was loaded.
func LoadAndSummarize(path string) (types.Dataset, error) {
	log := logger.New().WithField("component", "dataset.summary").WithField("path", path)
	log.Info("loading dataset")

	var (
		ds  types.Dataset
		err error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		ds, err = LoadJSON(path)
	} else {
		ds, err = Load(path)
	}
	if err != nil {
		log.WithError(err).Error("load failed")
		return types.Dataset{}, err
	}

	s := Summarize(ds)
	log.WithFields(logrus.Fields{
		"categories":          s.Categories,
		"trend_points":        s.TrendPoints,
		"accuracy_points":     s.AccuracyPoints,
		"distribution_slices": s.DistributionSlices,
	}).Info("dataset loaded")
	if s.DistributionSlices == 0 {
		log.Warn("dataset has no risk distribution; emergency estimate will fail")
	}
	return ds, nil
}
