package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string    `json:"id"`
	Script     string    `json:"script"`
	Timestamp  time.Time `json:"timestamp"`
	Speed      string    `json:"speed"`
	Tasks      int       `json:"tasks"`
	DurationMs int64     `json:"duration_ms"`
	FinalText  string    `json:"final_text"`
}

// Save writes metadata.json and frames.csv under a new run directory.
func (s *Store) Save(script, speed string, result *Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", script, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Script:     script,
		Timestamp:  now,
		Speed:      speed,
		Tasks:      result.Tasks,
		DurationMs: result.Duration.Milliseconds(),
	}
	if n := len(result.Frames); n > 0 {
		meta.FinalText = result.Frames[n-1].Text
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"task", "ms", "chars", "cursors", "text"}); err != nil {
		return "", err
	}
	for _, f := range result.Frames {
		row := []string{
			strconv.Itoa(f.Task),
			strconv.FormatInt(f.At.Milliseconds(), 10),
			strconv.Itoa(f.Chars),
			strconv.Itoa(f.Cursors),
			f.Text,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
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
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Frame{}, nil
	}

	frames := make([]Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 5 {
			continue
		}
		task, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		ms, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			continue
		}
		chars, _ := strconv.Atoi(record[2])
		cursors, _ := strconv.Atoi(record[3])
		frames = append(frames, Frame{
			Task:    task,
			At:      time.Duration(ms) * time.Millisecond,
			Chars:   chars,
			Cursors: cursors,
			Text:    record[4],
		})
	}

	return frames, nil
}
