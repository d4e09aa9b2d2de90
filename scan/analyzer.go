package scan

import (
	"fmt"

	"github.com/cwbudde/algo-osmo/curve"
	"github.com/cwbudde/algo-osmo/features"
	"github.com/cwbudde/algo-osmo/loader"
)

// Result is the outcome of analysing one curve.
type Result struct {
	Kind Kind
	// Source is the file the curve was loaded from, if any.
	Source string
	Curve  *curve.Curve
	// Max is the global maximum of the response.
	Max features.Landmark
	// Features is nil for kinds that derive only the maximum.
	Features *features.FeatureSet
}

// Analyzer derives the landmarks of one measurement kind.
type Analyzer interface {
	Kind() Kind
	Schema() loader.Schema
	Analyze(c *curve.Curve) (*Result, error)
}

// OsmoAnalyzer extracts the full feature set of an osmoscan.
type OsmoAnalyzer struct {
	extractor *features.Extractor
}

// NewOsmoAnalyzer returns an osmoscan analyzer using opts for extraction.
func NewOsmoAnalyzer(opts ...features.Option) *OsmoAnalyzer {
	return &OsmoAnalyzer{extractor: features.New(opts...)}
}

func (a *OsmoAnalyzer) Kind() Kind            { return KindOsmo }
func (a *OsmoAnalyzer) Schema() loader.Schema { return loader.Osmoscan }

func (a *OsmoAnalyzer) Analyze(c *curve.Curve) (*Result, error) {
	fs, err := a.extractor.Extract(c)
	if err != nil {
		return nil, fmt.Errorf("scan: %s: %w", KindOsmo, err)
	}
	return &Result{Kind: KindOsmo, Curve: c, Max: fs.Max(), Features: fs}, nil
}

// OxyAnalyzer reports the raw oxygenscan curve and its maximum.
type OxyAnalyzer struct {
	extractor *features.Extractor
}

// NewOxyAnalyzer returns an oxygenscan analyzer using opts for the tie window.
func NewOxyAnalyzer(opts ...features.Option) *OxyAnalyzer {
	return &OxyAnalyzer{extractor: features.New(opts...)}
}

func (a *OxyAnalyzer) Kind() Kind            { return KindOxy }
func (a *OxyAnalyzer) Schema() loader.Schema { return loader.Oxygenscan }

func (a *OxyAnalyzer) Analyze(c *curve.Curve) (*Result, error) {
	lm, err := a.extractor.Maximum(c)
	if err != nil {
		return nil, fmt.Errorf("scan: %s: %w", KindOxy, err)
	}
	return &Result{Kind: KindOxy, Curve: c, Max: lm}, nil
}
