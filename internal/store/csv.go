package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/i474232898/capitals-weather/internal/capitals"
	"github.com/i474232898/capitals-weather/internal/logger"
)

var (
	// ErrMissingColumn is returned when a source table lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrEmptyTable is returned when a source file has no header row.
	ErrEmptyTable = errors.New("empty table")
)

// Required columns of each source table.
var (
	cityColumns    = []string{"city", "admin_name", "lat", "lng"}
	capitalColumns = []string{"state", "capital"}
)

type fileState struct {
	modTime time.Time
	size    int64
}

// CSVStore loads the world-cities and state-capitals tables from delimited
// text files with a header row and remembers what it loaded last.
type CSVStore struct {
	citiesPath   string
	capitalsPath string

	mu   sync.Mutex
	last map[string]fileState
}

// NewCSVStore creates a store over the two table files.
func NewCSVStore(citiesPath, capitalsPath string) *CSVStore {
	return &CSVStore{
		citiesPath:   citiesPath,
		capitalsPath: capitalsPath,
		last:         make(map[string]fileState),
	}
}

// Load reads and parses both tables.
func (s *CSVStore) Load() ([]capitals.CityRecord, []capitals.CapitalRecord, error) {
	states := make(map[string]fileState, 2)
	for _, p := range []string{s.citiesPath, s.capitalsPath} {
		st, err := stat(p)
		if err != nil {
			return nil, nil, err
		}
		states[p] = st
	}

	cities, err := s.loadCities()
	if err != nil {
		return nil, nil, err
	}

	caps, err := s.loadCapitals()
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	s.last = states
	s.mu.Unlock()

	return cities, caps, nil
}

// Changed reports whether either file differs (mtime or size) from the last Load.
func (s *CSVStore) Changed() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range []string{s.citiesPath, s.capitalsPath} {
		st, err := stat(p)
		if err != nil {
			return false, err
		}
		prev, ok := s.last[p]
		if !ok || !prev.modTime.Equal(st.modTime) || prev.size != st.size {
			return true, nil
		}
	}
	return false, nil
}

func (s *CSVStore) loadCities() ([]capitals.CityRecord, error) {
	t, err := readTable(s.citiesPath, cityColumns)
	if err != nil {
		return nil, err
	}

	names := t["city"]
	admins := t["admin_name"]
	lats := t["lat"]
	lngs := t["lng"]

	out := make([]capitals.CityRecord, 0, len(names))
	for i := range names {
		lat, err := parseCoord(lats[i])
		if err != nil {
			logger.WithFields(logger.Fields{"row": i + 2, "city": names[i]}).Warn("skipping city with invalid lat")
			continue
		}
		lng, err := parseCoord(lngs[i])
		if err != nil {
			logger.WithFields(logger.Fields{"row": i + 2, "city": names[i]}).Warn("skipping city with invalid lng")
			continue
		}

		out = append(out, capitals.CityRecord{
			City:      names[i],
			AdminName: admins[i],
			Lat:       lat,
			Lng:       lng,
		})
	}

	return out, nil
}

func (s *CSVStore) loadCapitals() ([]capitals.CapitalRecord, error) {
	t, err := readTable(s.capitalsPath, capitalColumns)
	if err != nil {
		return nil, err
	}

	states := t["state"]
	caps := t["capital"]

	out := make([]capitals.CapitalRecord, 0, len(states))
	for i := range states {
		out = append(out, capitals.CapitalRecord{State: states[i], Capital: caps[i]})
	}
	return out, nil
}

// table maps a required column name to its cells in row order.
type table map[string][]string

// readTable loads the required columns of path as raw strings. A header-only
// file yields empty columns.
func readTable(path string, required []string) (table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
	}

	have := make(map[string]struct{}, len(records[0]))
	for _, n := range records[0] {
		have[n] = struct{}{}
	}
	for _, col := range required {
		if _, ok := have[col]; !ok {
			return nil, fmt.Errorf("%s: %w %q", path, ErrMissingColumn, col)
		}
	}

	t := make(table, len(required))
	if len(records) == 1 {
		for _, col := range required {
			t[col] = []string{}
		}
		return t, nil
	}

	// Cells are kept verbatim; gota would otherwise turn "NA" into "NaN".
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read %s: %w", path, df.Err)
	}
	for _, col := range required {
		t[col] = df.Col(col).Records()
	}

	return t, nil
}

// parseCoord parses a coordinate cell. NaN and infinities are rejected.
func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	return v, nil
}

func stat(path string) (fileState, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return fileState{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return fileState{modTime: fi.ModTime(), size: fi.Size()}, nil
}
