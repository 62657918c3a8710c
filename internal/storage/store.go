package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/mkovar/fieldsim/internal/entity"
	"github.com/mkovar/fieldsim/internal/world"
)

// Store keeps completed run results on disk: one directory per run with
// metadata.json and trajectories.csv. Results are write-once; the simulation
// never reads state back from here.
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
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Row is one recorded step: the time, population, total kinetic energy, and
// the position of the first dynamic body (the run command's tracer).
type Row struct {
	Time    float64
	Dynamic int
	Kinetic float64
	X, Y    float64
}

// Recorder accumulates per-step rows from world snapshots.
type Recorder struct {
	rows []Row
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Observe(snaps []world.Snapshot, t float64) {
	row := Row{Time: t}
	first := true
	for _, s := range snaps {
		if !s.Dynamic {
			continue
		}
		row.Dynamic++
		if ke, ok := s.Aux[entity.AuxKinetic].(float64); ok {
			row.Kinetic += ke
		}
		if first {
			row.X, row.Y = s.Position.X, s.Position.Y
			first = false
		}
	}
	r.rows = append(r.rows, row)
}

func (r *Recorder) Rows() []Row { return r.rows }

// Save writes one run directory and returns its id.
func (s *Store) Save(scene string, dt float64, seed int64, rec *Recorder, metricValues map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", scene, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scene:     scene,
		Timestamp: time.Now(),
		Seed:      seed,
		Dt:        dt,
		Steps:     len(rec.Rows()),
		Metrics:   metricValues,
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

	csvFile, err := os.Create(filepath.Join(runDir, "trajectories.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"time", "dynamic", "kinetic", "x", "y"}); err != nil {
		return "", err
	}
	for _, row := range rec.Rows() {
		record := []string{
			strconv.FormatFloat(row.Time, 'g', -1, 64),
			strconv.Itoa(row.Dynamic),
			strconv.FormatFloat(row.Kinetic, 'g', -1, 64),
			strconv.FormatFloat(row.X, 'g', -1, 64),
			strconv.FormatFloat(row.Y, 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every stored run, newest last.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.LoadMetadata(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) LoadMetadata(runID string) (*RunMetadata, error) {
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

// LoadRows reads the recorded steps of a run back for plotting.
func (s *Store) LoadRows(runID string) ([]Row, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trajectories.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 5 {
			return nil, fmt.Errorf("malformed row in %s: %v", runID, record)
		}
		t, _ := strconv.ParseFloat(record[0], 64)
		dyn, _ := strconv.Atoi(record[1])
		ke, _ := strconv.ParseFloat(record[2], 64)
		x, _ := strconv.ParseFloat(record[3], 64)
		y, _ := strconv.ParseFloat(record[4], 64)
		rows = append(rows, Row{Time: t, Dynamic: dyn, Kinetic: ke, X: x, Y: y})
	}
	return rows, nil
}
