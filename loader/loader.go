package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-osmo/curve"
)

// ErrNoHeader is returned when an export has no "#" header row.
var ErrNoHeader = errors.New("no header row")

// File is a parsed export.
type File struct {
	Path     string
	Schema   Schema
	Headers  []string
	Columns  map[string][]float64
	Metadata curve.Metadata

	// Limits holds the integration limits. HasLimits reports whether both
	// were present in the export.
	Limits    curve.Limits
	HasLimits bool

	// Skipped counts data rows dropped for a width mismatch.
	Skipped int
}

// Rows returns the number of data rows.
func (f *File) Rows() int {
	if len(f.Headers) == 0 {
		return 0
	}
	return len(f.Columns[f.Headers[0]])
}

// Curve builds the schema's stress/response curve. Without limits in the
// export the whole stress range is integrated.
func (f *File) Curve() (*curve.Curve, error) {
	limits := f.Limits
	if !f.HasLimits {
		lo, hi := span(f.Columns[f.Schema.Stress])
		limits = curve.Limits{Lower: lo, Upper: hi}
	}

	c, err := curve.FromColumns(f.Columns, f.Schema.Stress, f.Schema.Response, limits, f.Metadata)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", f.Path, err)
	}
	return c, nil
}

// Load parses the export at path and checks it against schema.
func Load(path string, schema Schema, opts ...Option) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer fh.Close()

	f, err := Read(fh, schema, opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Read parses an export from r and checks it against schema. Missing
// required columns wrap [curve.ErrDataColumnNotFound]. Cells that do not
// parse as numbers are stored as NaN.
func Read(r io.Reader, schema Schema, opts ...Option) (*File, error) {
	cfg := ApplyOptions(opts...)
	cr := newReader(r, cfg)

	f := &File{Schema: schema}
	lower, upper := false, false

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		if err != nil {
			return nil, err
		}
		if blank(row) {
			continue
		}
		if isHeader(row) {
			f.Headers = trimAll(row[1:])
			break
		}

		key, value, ok := metadataRow(row)
		if !ok {
			continue
		}
		switch key {
		case keyUpperLimit:
			v, err := parseNumber(value, cfg.DecimalComma)
			if err != nil {
				return nil, fmt.Errorf("upper limit: %w", err)
			}
			f.Limits.Upper, upper = v, true
		case keyLowerLimit:
			v, err := parseNumber(value, cfg.DecimalComma)
			if err != nil {
				return nil, fmt.Errorf("lower limit: %w", err)
			}
			f.Limits.Lower, lower = v, true
		case keyDate, keyDateAlt:
			f.Metadata.Date = value
		case keyInstrument:
			f.Metadata.InstrumentInfo = value
		case keyMeasurementID:
			f.Metadata.MeasurementID = value
		case keyPatientName:
			f.Metadata.PatientName = value
		}
	}
	f.HasLimits = lower && upper

	if missing := schema.Missing(f.Headers); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s requires %s", curve.ErrDataColumnNotFound, schema.Name, strings.Join(missing, ", "))
	}

	f.Columns = make(map[string][]float64, len(f.Headers))
	for _, h := range f.Headers {
		f.Columns[h] = nil
	}

	line := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(row) == 0 || isHeader(row) {
			continue
		}

		values := row[1:]
		if len(values) != len(f.Headers) {
			cfg.Logger.Warn().
				Int("row", line).
				Int("want", len(f.Headers)).
				Int("got", len(values)).
				Msg("skipping row with mismatched width")
			f.Skipped++
			continue
		}

		for i, h := range f.Headers {
			v, err := parseNumber(values[i], cfg.DecimalComma)
			if err != nil {
				cfg.Logger.Warn().
					Int("row", line).
					Str("column", h).
					Str("value", values[i]).
					Msg("non-numeric cell")
				v = math.NaN()
			}
			f.Columns[h] = append(f.Columns[h], v)
		}
	}

	return f, nil
}

// PeekHeaders returns the header names of the export at path without reading
// its data. It returns nil if the file has no header row.
func PeekHeaders(path string, opts ...Option) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer fh.Close()

	cr := newReader(fh, ApplyOptions(opts...))
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("loader: %s: %w", path, err)
		}
		if isHeader(row) {
			return trimAll(row[1:]), nil
		}
	}
}

const (
	keyUpperLimit    = "Upper limit area"
	keyLowerLimit    = "Lower limit area"
	keyDate          = "Date (Y-M-D)"
	keyDateAlt       = "Data (Y-M-D)"
	keyInstrument    = "Instrument info"
	keyMeasurementID = "Measurement ID"
	keyPatientName   = "Patient name"
)

var metadataKeys = []string{
	keyUpperLimit, keyLowerLimit, keyDate, keyDateAlt,
	keyInstrument, keyMeasurementID, keyPatientName,
}

// metadataRow matches a row whose label cell contains a known key.
func metadataRow(row []string) (key, value string, ok bool) {
	if len(row) < 2 {
		return "", "", false
	}
	for _, k := range metadataKeys {
		if strings.Contains(row[0], k) {
			return k, strings.TrimSpace(row[1]), true
		}
	}
	return "", "", false
}

func newReader(r io.Reader, cfg Config) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = cfg.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

func parseNumber(s string, decimalComma bool) (float64, error) {
	s = strings.TrimSpace(s)
	if decimalComma {
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.TrimSpace(row[0]) == "#"
}

func blank(row []string) bool {
	return len(row) == 0 || strings.TrimSpace(row[0]) == ""
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}

func span(x []float64) (lo, hi float64) {
	if len(x) == 0 {
		return 0, 0
	}
	lo, hi = x[0], x[0]
	for _, v := range x[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
