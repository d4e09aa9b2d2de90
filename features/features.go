package features

import (
	"fmt"

	"github.com/cwbudde/algo-osmo/curve"
	"github.com/cwbudde/algo-osmo/integrate"
	"github.com/cwbudde/algo-osmo/interp"
	"github.com/cwbudde/algo-osmo/peaks"
)

// Landmark is a sample of the curve singled out by the analysis.
type Landmark struct {
	Index    int
	Stress   float64
	Response float64
}

// FeatureSet is the complete set of landmarks derived from one curve.
type FeatureSet struct {
	Metadata curve.Metadata
	Limits   curve.Limits

	ResponseMax      float64
	StressAtMax      float64
	StressAtMaxIndex int

	ResponseHalfMax float64
	// StressAtHalfMax is nil when the response never falls to the
	// half-maximum after the maximum.
	StressAtHalfMax *float64

	FirstPeak Landmark
	Valley    Landmark

	Area                float64
	AreaStressSegment   []float64
	AreaResponseSegment []float64
}

// HalfMaxStress returns the hyper point and whether it exists.
func (fs *FeatureSet) HalfMaxStress() (float64, bool) {
	if fs.StressAtHalfMax == nil {
		return 0, false
	}
	return *fs.StressAtHalfMax, true
}

// Max returns the global maximum as a landmark.
func (fs *FeatureSet) Max() Landmark {
	return Landmark{Index: fs.StressAtMaxIndex, Stress: fs.StressAtMax, Response: fs.ResponseMax}
}

// Extractor computes feature sets with a fixed configuration.
type Extractor struct {
	cfg Config
}

// New returns an Extractor configured by opts.
func New(opts ...Option) *Extractor {
	return &Extractor{cfg: ApplyOptions(opts...)}
}

// Config returns the extractor's settings.
func (e *Extractor) Config() Config { return e.cfg }

// Extract computes the feature set of c with the given options.
func Extract(c *curve.Curve, opts ...Option) (*FeatureSet, error) {
	return New(opts...).Extract(c)
}

// Extract computes the feature set of c. Errors are wrapped with the name of
// the failing step and classify with [errors.Is] against the curve package
// sentinels.
func (e *Extractor) Extract(c *curve.Curve) (*FeatureSet, error) {
	if err := checkCurve(c); err != nil {
		return nil, err
	}

	var (
		fs  *FeatureSet
		err error
	)
	c.View(func(stress, response []float64) {
		fs, err = e.extract(stress, response, c.Limits())
	})
	if err != nil {
		return nil, err
	}

	fs.Metadata = c.Metadata()
	fs.Limits = c.Limits()
	return fs, nil
}

// Maximum returns the global maximum of c's response. Equal maxima resolve
// to the middle one.
func (e *Extractor) Maximum(c *curve.Curve) (Landmark, error) {
	if err := checkCurve(c); err != nil {
		return Landmark{}, err
	}

	var (
		lm  Landmark
		err error
	)
	c.View(func(stress, response []float64) {
		var i int
		i, err = e.maximum(response)
		if err == nil {
			lm = landmark(stress, response, i)
		}
	})
	return lm, err
}

// HyperPoint returns the half-maximum of c's response and the stress where
// the response first falls to it after the maximum. stress is nil when the
// response never gets there.
func (e *Extractor) HyperPoint(c *curve.Curve) (half float64, stress *float64, err error) {
	if err = checkCurve(c); err != nil {
		return 0, nil, err
	}

	c.View(func(s, r []float64) {
		var i int
		if i, err = e.maximum(r); err != nil {
			return
		}
		half = r[i] / 2
		stress, err = hyperPoint(s, r, i, half)
	})
	return half, stress, err
}

func (e *Extractor) maximum(response []float64) (int, error) {
	i, err := peaks.GlobalMax(response)
	if err != nil {
		return 0, fmt.Errorf("features: maximum: %w", err)
	}
	return i, nil
}

func hyperPoint(stress, response []float64, maxIdx int, half float64) (*float64, error) {
	pos, ok, err := interp.Crossing(stress, response, maxIdx, half)
	if err != nil {
		return nil, fmt.Errorf("features: half maximum: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return &pos, nil
}

func (e *Extractor) extract(stress, response []float64, limits curve.Limits) (*FeatureSet, error) {
	w := e.cfg.TieWindow

	maxIdx, err := e.maximum(response)
	if err != nil {
		return nil, err
	}
	respMax := response[maxIdx]
	half := respMax / 2

	peakIdx, err := peaks.MostProminent(response, 0, maxIdx, w)
	if err != nil {
		return nil, fmt.Errorf("features: first peak: %w", err)
	}

	valleyIdx, err := peaks.MostProminentValley(response, peakIdx, maxIdx, w)
	if err != nil {
		return nil, fmt.Errorf("features: valley: %w", err)
	}

	hyper, err := hyperPoint(stress, response, maxIdx, half)
	if err != nil {
		return nil, err
	}

	area, err := integrate.Segment(stress, response, limits)
	if err != nil {
		return nil, fmt.Errorf("features: area: %w", err)
	}

	return &FeatureSet{
		ResponseMax:         respMax,
		StressAtMax:         stress[maxIdx],
		StressAtMaxIndex:    maxIdx,
		ResponseHalfMax:     half,
		StressAtHalfMax:     hyper,
		FirstPeak:           landmark(stress, response, peakIdx),
		Valley:              landmark(stress, response, valleyIdx),
		Area:                area.Area,
		AreaStressSegment:   area.Stress,
		AreaResponseSegment: area.Response,
	}, nil
}

func checkCurve(c *curve.Curve) error {
	if c == nil || c.Len() < curve.MinSamples {
		return fmt.Errorf("features: %w: curve needs at least %d samples", curve.ErrInsufficientData, curve.MinSamples)
	}
	return nil
}

func landmark(stress, response []float64, i int) Landmark {
	return Landmark{Index: i, Stress: stress[i], Response: response[i]}
}
