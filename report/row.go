package report

import (
	"github.com/cwbudde/algo-osmo/scan"
)

// Row is the flat export record of one analysed curve.
type Row struct {
	Source         string `json:"source"`
	Kind           string `json:"kind"`
	MeasurementID  string `json:"measurement_id,omitempty"`
	Date           string `json:"date,omitempty"`
	InstrumentInfo string `json:"instrument_info,omitempty"`
	PatientName    string `json:"patient_name,omitempty"`

	LowerLimit float64 `json:"lower_limit"`
	UpperLimit float64 `json:"upper_limit"`

	ResponseMax      float64 `json:"response_max"`
	StressAtMax      float64 `json:"stress_at_max"`
	StressAtMaxIndex int     `json:"stress_at_max_index"`

	ResponseHalfMax   *float64 `json:"response_half_max"`
	StressAtHalfMax   *float64 `json:"stress_at_half_max"`
	FirstPeakStress   *float64 `json:"first_peak_stress"`
	FirstPeakResponse *float64 `json:"first_peak_response"`
	ValleyStress      *float64 `json:"valley_stress"`
	ValleyResponse    *float64 `json:"valley_response"`
	Area              *float64 `json:"area"`
}

// FromResult flattens res into a Row.
func FromResult(res *scan.Result) Row {
	meta := res.Curve.Metadata()
	limits := res.Curve.Limits()

	row := Row{
		Source:           res.Source,
		Kind:             res.Kind.String(),
		MeasurementID:    meta.MeasurementID,
		Date:             meta.Date,
		InstrumentInfo:   meta.InstrumentInfo,
		PatientName:      meta.PatientName,
		LowerLimit:       limits.Lower,
		UpperLimit:       limits.Upper,
		ResponseMax:      res.Max.Response,
		StressAtMax:      res.Max.Stress,
		StressAtMaxIndex: res.Max.Index,
	}

	fs := res.Features
	if fs == nil {
		return row
	}

	row.ResponseHalfMax = ptr(fs.ResponseHalfMax)
	if v, ok := fs.HalfMaxStress(); ok {
		row.StressAtHalfMax = ptr(v)
	}
	row.FirstPeakStress = ptr(fs.FirstPeak.Stress)
	row.FirstPeakResponse = ptr(fs.FirstPeak.Response)
	row.ValleyStress = ptr(fs.Valley.Stress)
	row.ValleyResponse = ptr(fs.Valley.Response)
	row.Area = ptr(fs.Area)

	return row
}

// Rows flattens results in order.
func Rows(results []*scan.Result) []Row {
	out := make([]Row, len(results))
	for i, res := range results {
		out[i] = FromResult(res)
	}
	return out
}

func ptr(v float64) *float64 { return &v }
