package loader

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-osmo/curve"
)

func TestLoadOsmoscan(t *testing.T) {
	var logs bytes.Buffer
	f, err := Load(filepath.Join("testdata", "osmoscan.csv"), Osmoscan, WithLogger(zerolog.New(&logs)))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "SdA", "B", "SdB", "Eof", "O.", "EI", "SdEI"}, f.Headers)
	assert.Equal(t, "OSM-0042", f.Metadata.MeasurementID)
	assert.Equal(t, "2024-03-18", f.Metadata.Date)
	assert.Equal(t, "Lorrca MaxSis 1.2", f.Metadata.InstrumentInfo)
	assert.True(t, f.HasLimits)
	assert.Equal(t, curve.Limits{Lower: 150, Upper: 400}, f.Limits)

	assert.Equal(t, 9, f.Rows())
	assert.Equal(t, 1, f.Skipped)
	assert.Equal(t, []float64{100, 150, 200, 250, 300, 350, 400, 450, 500}, f.Columns["O."])
	assert.InDelta(t, 0.6, f.Columns["EI"][5], 1e-12)
	assert.Contains(t, logs.String(), "mismatched width")
}

func TestFileCurve(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "osmoscan.csv"), Osmoscan)
	require.NoError(t, err)

	c, err := f.Curve()
	require.NoError(t, err)
	assert.Equal(t, 9, c.Len())
	assert.Equal(t, f.Limits, c.Limits())
	assert.Equal(t, "OSM-0042", c.Metadata().MeasurementID)
	assert.Equal(t, 350.0, c.StressAt(5))
}

func TestLoadOxygenscanWithoutLimits(t *testing.T) {
	f, err := Load(filepath.Join("testdata", "oxygenscan.csv"), Oxygenscan)
	require.NoError(t, err)

	assert.Equal(t, "J. Doe", f.Metadata.PatientName)
	assert.Equal(t, "2024-05-02", f.Metadata.Date)
	assert.False(t, f.HasLimits)

	c, err := f.Curve()
	require.NoError(t, err)
	assert.Equal(t, curve.Limits{Lower: 20, Upper: 100}, c.Limits())
}

func TestLoadWrongSchema(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "oxygenscan.csv"), Osmoscan)
	require.Error(t, err)
	assert.True(t, errors.Is(err, curve.ErrDataColumnNotFound))
	assert.Contains(t, err.Error(), "SdA")
}

func TestReadNoHeader(t *testing.T) {
	_, err := Read(strings.NewReader("Measurement ID;X\n1;2;3\n"), Osmoscan)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadBadLimit(t *testing.T) {
	_, err := Read(strings.NewReader("Upper limit area;high\n#;A\n"), Schema{Name: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upper limit")
}

func TestReadNonNumericCell(t *testing.T) {
	schema := Schema{Name: "t", Required: []string{"x", "y"}, Stress: "x", Response: "y"}
	f, err := Read(strings.NewReader("#;x;y\n1;1;n/a\n2;2;3,5\n"), schema)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(f.Columns["y"][0]))
	assert.Equal(t, 3.5, f.Columns["y"][1])

	_, err = f.Curve()
	assert.ErrorIs(t, err, curve.ErrNonFinite)
}

func TestReadOptions(t *testing.T) {
	schema := Schema{Name: "t", Required: []string{"x", "y"}, Stress: "x", Response: "y"}
	src := "Upper limit area\t2.5\nLower limit area\t0.5\n#\tx\ty\n1\t0.5\t1.25\n2\t2.5\t2\n"

	f, err := Read(strings.NewReader(src), schema, WithDelimiter('\t'), WithDecimalComma(false))
	require.NoError(t, err)
	assert.Equal(t, curve.Limits{Lower: 0.5, Upper: 2.5}, f.Limits)
	assert.Equal(t, []float64{1.25, 2}, f.Columns["y"])
}

func TestApplyOptionsIgnoresInvalidDelimiter(t *testing.T) {
	cfg := ApplyOptions(WithDelimiter('\n'), nil)
	assert.Equal(t, ';', cfg.Delimiter)
	assert.True(t, cfg.DecimalComma)
}

func TestPeekHeaders(t *testing.T) {
	headers, err := PeekHeaders(filepath.Join("testdata", "oxygenscan.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "EI", "pO2", "N2"}, headers)

	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("Patient name;X\n"), 0o600))
	headers, err = PeekHeaders(empty)
	require.NoError(t, err)
	assert.Nil(t, headers)

	_, err = PeekHeaders(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSchemaMissing(t *testing.T) {
	assert.Empty(t, Oxygenscan.Missing([]string{"N2", "pO2", "EI", "B", "A", "extra"}))
	assert.Equal(t, []string{"EI", "N2"}, Oxygenscan.Missing([]string{"A", "B", "pO2"}))
}
