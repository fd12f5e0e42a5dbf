// Package deltat provides delta-T (TT-UT1) lookups from a CSV table with
// a polynomial fallback for years outside the table.
package deltat

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// entry is one tabulated delta-T sample at a decimal year.
type entry struct {
	year   float64
	deltaT float64
}

// Source resolves delta-T in seconds for a calendar date. A zero Source
// has no table and always falls back to the polynomial estimate.
type Source struct {
	table []entry
}

// NewSource loads a delta-T table from a CSV file with columns
// "year,delta_t_s". Rows must be sorted by year. An empty path yields a
// source that only estimates.
func NewSource(path string) (*Source, error) {
	s := &Source{}
	if path == "" {
		return s, nil
	}

	//nolint:gosec // G304: File path comes from service configuration.
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open delta-T table: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	expected := []string{"year", "delta_t_s"}
	if len(header) != len(expected) || header[0] != expected[0] || header[1] != expected[1] {
		return nil, fmt.Errorf("invalid CSV header: expected %v, got %v", expected, header)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV rows: %w", err)
	}
	for i, row := range rows {
		year, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid year %q: %w", i+1, row[0], err)
		}
		dt, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid delta_t_s %q: %w", i+1, row[1], err)
		}
		s.table = append(s.table, entry{year: year, deltaT: dt})
	}
	if !sort.SliceIsSorted(s.table, func(i, j int) bool { return s.table[i].year < s.table[j].year }) {
		return nil, fmt.Errorf("delta-T table must be sorted by year")
	}
	return s, nil
}

// DeltaT returns delta-T in seconds for a year and month, interpolating
// linearly in the table and falling back to Estimate outside it. The
// second result reports whether the table served the value, so callers
// can state the actual provenance.
func (s *Source) DeltaT(year, month int) (float64, bool) {
	y := decimalYear(year, month)
	n := len(s.table)
	if n == 0 || y < s.table[0].year || y > s.table[n-1].year {
		return Estimate(year, month), false
	}

	i := sort.Search(n, func(i int) bool { return s.table[i].year >= y })
	if i == 0 {
		return s.table[0].deltaT, true
	}
	if i == n {
		return s.table[n-1].deltaT, true
	}
	lo, hi := s.table[i-1], s.table[i]
	if hi.year == lo.year {
		return hi.deltaT, true
	}
	frac := (y - lo.year) / (hi.year - lo.year)
	return lo.deltaT + frac*(hi.deltaT-lo.deltaT), true
}

// decimalYear places a month at its midpoint within the year.
func decimalYear(year, month int) float64 {
	return float64(year) + (float64(month)-0.5)/12.0
}

// Estimate returns the Espenak & Meeus polynomial expression for delta-T
// in seconds. Accuracy is a few seconds in the current era and degrades
// for remote epochs.
func Estimate(year, month int) float64 {
	y := decimalYear(year, month)

	switch {
	case y < -500:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	case y < 500:
		u := y / 100
		return 10583.6 + u*(-1014.41+u*(33.78311+u*(-5.952053+
			u*(-0.1798452+u*(0.022174192+u*0.0090316521)))))
	case y < 1600:
		u := (y - 1000) / 100
		return 1574.2 + u*(-556.01+u*(71.23472+u*(0.319781+
			u*(-0.8503463+u*(-0.005050998+u*0.0083572073)))))
	case y < 1700:
		t := y - 1600
		return 120 + t*(-0.9808+t*(-0.01532+t/7129))
	case y < 1800:
		t := y - 1700
		return 8.83 + t*(0.1603+t*(-0.0059285+t*(0.00013336-t/1174000)))
	case y < 1860:
		t := y - 1800
		return 13.72 + t*(-0.332447+t*(0.0068612+t*(0.0041116+t*(-0.00037436+
			t*(0.0000121272+t*(-0.0000001699+t*0.000000000875))))))
	case y < 1900:
		t := y - 1860
		return 7.62 + t*(0.5737+t*(-0.251754+t*(0.01680668+
			t*(-0.0004473624+t/233174))))
	case y < 1920:
		t := y - 1900
		return -2.79 + t*(1.494119+t*(-0.0598939+t*(0.0061966-t*0.000197)))
	case y < 1941:
		t := y - 1920
		return 21.20 + t*(0.84493+t*(-0.076100+t*0.0020936))
	case y < 1961:
		t := y - 1950
		return 29.07 + t*(0.407+t*(-1.0/233+t/2547))
	case y < 1986:
		t := y - 1975
		return 45.45 + t*(1.067+t*(-1.0/260-t/718))
	case y < 2005:
		t := y - 2000
		return 63.86 + t*(0.3345+t*(-0.060374+t*(0.0017275+
			t*(0.000651814+t*0.00002373599))))
	case y < 2050:
		t := y - 2000
		return 62.92 + t*(0.32217+t*0.005589)
	case y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}
