package scan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-osmo/curve"
	"github.com/cwbudde/algo-osmo/features"
	"github.com/cwbudde/algo-osmo/loader"
)

func testdata(name string) string {
	return filepath.Join("..", "loader", "testdata", name)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" OSMO ")
	require.NoError(t, err)
	assert.Equal(t, KindOsmo, k)

	k, err = ParseKind("oxy")
	require.NoError(t, err)
	assert.Equal(t, KindOxy, k)

	_, err = ParseKind("hc")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "osmo", KindOsmo.String())
	assert.Equal(t, "oxy", KindOxy.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []Kind{KindOsmo, KindOxy}, r.Kinds())

	a, err := r.Lookup(KindOxy)
	require.NoError(t, err)
	assert.Equal(t, loader.Oxygenscan.Name, a.Schema().Name)

	_, err = NewRegistry().Lookup(KindOsmo)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRegisterReplaces(t *testing.T) {
	r := NewRegistry(NewOsmoAnalyzer())
	custom := NewOsmoAnalyzer(features.WithTieWindow(2))
	r.Register(custom)

	a, err := r.Lookup(KindOsmo)
	require.NoError(t, err)
	assert.Same(t, custom, a)
	assert.Len(t, r.Kinds(), 1)
}

func TestAnalyzeFileOsmo(t *testing.T) {
	res, err := DefaultRegistry().AnalyzeFile(testdata("osmoscan.csv"), KindOsmo)
	require.NoError(t, err)
	require.NotNil(t, res.Features)

	fs := res.Features
	assert.Equal(t, KindOsmo, res.Kind)
	assert.Equal(t, testdata("osmoscan.csv"), res.Source)
	assert.InDelta(t, 0.6, fs.ResponseMax, 1e-12)
	assert.Equal(t, 350.0, fs.StressAtMax)
	assert.Equal(t, 150.0, fs.FirstPeak.Stress)
	assert.Equal(t, 250.0, fs.Valley.Stress)

	hyper, ok := fs.HalfMaxStress()
	require.True(t, ok)
	assert.InDelta(t, 425, hyper, 1e-9)
	assert.InDelta(t, 260.0/3, fs.Area, 1e-9)
	assert.Equal(t, "OSM-0042", fs.Metadata.MeasurementID)
	assert.Equal(t, res.Max, fs.Max())
}

func TestAnalyzeFileOxy(t *testing.T) {
	res, err := DefaultRegistry().AnalyzeFile(testdata("oxygenscan.csv"), KindOxy)
	require.NoError(t, err)

	assert.Nil(t, res.Features)
	assert.Equal(t, features.Landmark{Index: 2, Stress: 60, Response: 0.62}, res.Max)
	assert.Equal(t, "J. Doe", res.Curve.Metadata().PatientName)
}

func TestAnalyzeFileErrors(t *testing.T) {
	r := DefaultRegistry()

	_, err := r.AnalyzeFile(testdata("oxygenscan.csv"), KindOsmo)
	assert.ErrorIs(t, err, curve.ErrDataColumnNotFound)

	_, err = r.AnalyzeFile(testdata("osmoscan.csv"), Kind(9))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestOsmoAnalyzerWrapsStepErrors(t *testing.T) {
	c, err := curve.New([]float64{1, 2, 3}, []float64{1, 2, 3}, curve.Limits{Lower: 1, Upper: 3}, curve.Metadata{})
	require.NoError(t, err)

	_, err = NewOsmoAnalyzer().Analyze(c)
	assert.ErrorIs(t, err, curve.ErrNoProminentExtremum)
	assert.Contains(t, err.Error(), "osmo")
}
