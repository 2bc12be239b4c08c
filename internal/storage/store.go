package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/rhythmlab/internal/explorer"
)

var ErrNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes one saved exploration.
type RunMetadata struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	Params    explorer.Params `json:"params"`
	Status    explorer.Status `json:"status"`
	Total     int             `json:"totalCombinations"`
	Tested    int             `json:"testedCombinations"`
	Found     int             `json:"found"`
	Perfect   int             `json:"perfect"`
	Elapsed   time.Duration   `json:"elapsed"`
}

// Run is everything recorded about an exploration before it is saved.
type Run struct {
	Name    string
	Params  explorer.Params
	State   explorer.State
	Elapsed time.Duration
}

// Save writes metadata.json, results.json and results.csv into a new run
// directory and returns the run ID.
func (s *Store) Save(run Run) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("explore_%s_%s", now.Format("20060102_150405"), uuid.New().String()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	perfect := 0
	for _, r := range run.State.Results {
		if r.Balance.IsPerfectlyBalanced {
			perfect++
		}
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      run.Name,
		Timestamp: now,
		Params:    run.Params,
		Status:    run.State.Status,
		Total:     run.State.TotalCombinations,
		Tested:    run.State.CurrentCombination,
		Found:     len(run.State.Results),
		Perfect:   perfect,
		Elapsed:   run.Elapsed,
	}

	if err := writeRun(runDir, meta, run.State.Results); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}

	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, results []explorer.Result) error {
	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(runDir, "results.json"), results); err != nil {
		return err
	}
	return writeCSV(filepath.Join(runDir, "results.csv"), results)
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var csvHeader = []string{
	"polygons", "offsets", "subtract", "formula", "steps", "onsets",
	"magnitude", "score", "interesting", "quality", "binary",
}

func writeCSV(path string, results []explorer.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			joinInts(r.Polygons),
			joinInts(r.Offsets),
			joinInts(r.SubtractVertices),
			"", "0", strconv.Itoa(r.Balance.OnsetCount),
			strconv.FormatFloat(r.Balance.Magnitude, 'f', 6, 64),
			string(r.Balance.Score),
			strconv.FormatBool(r.IsInteresting),
			strconv.Itoa(r.Quality),
			"",
		}
		if r.Pattern != nil {
			row[3] = r.Pattern.Formula
			row[4] = strconv.Itoa(r.Pattern.StepCount)
			row[10] = r.Pattern.Binary()
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	var meta RunMetadata
	if err := s.readJSON(runID, "metadata.json", &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadResults(runID string) ([]explorer.Result, error) {
	results := make([]explorer.Result, 0)
	if err := s.readJSON(runID, "results.json", &results); err != nil {
		return nil, err
	}
	return results, nil
}

// validRunID accepts a single path element that is not a dot directory.
func validRunID(runID string) bool {
	return runID != "" && runID != "." && runID != ".." &&
		!strings.ContainsAny(runID, `/\`) && filepath.Base(runID) == runID
}

func (s *Store) readJSON(runID, name string, v any) error {
	if !validRunID(runID) {
		return fmt.Errorf("%w: %q", ErrNotFound, runID)
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return err
	}
	return json.Unmarshal(data, v)
}
