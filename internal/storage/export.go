package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/rhythmlab/internal/explorer"
)

// ExportData is the single-document form of a run.
type ExportData struct {
	Run     RunMetadata       `json:"run"`
	Results []explorer.Result `json:"results"`
}

func (s *Store) Export(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	results, err := s.LoadResults(runID)
	if err != nil {
		return nil, err
	}
	return &ExportData{Run: *meta, Results: results}, nil
}

func ExportJSON(path string, data *ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}

func WriteJSON(w io.Writer, data *ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
