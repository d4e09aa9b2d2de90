package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cwbudde/algo-osmo/scan"
)

const areaFill = "rgba(84, 112, 198, 0.3)"

// Chart builds the chart of res.
func Chart(res *scan.Result) *charts.Line {
	axis := stressAxis(res.Kind)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title(res),
			Subtitle: res.Kind.String() + "scan",
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: axis}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "EI"}),
	)

	var raw []opts.LineData
	res.Curve.View(func(stress, response []float64) {
		raw = make([]opts.LineData, len(stress))
		for i := range stress {
			raw[i] = opts.LineData{Value: []float64{stress[i], response[i]}}
		}
	})
	line.AddSeries(fmt.Sprintf("Raw %s vs EI", axis), raw)

	markers := charts.NewScatter()
	markers.AddSeries("EI max", []opts.ScatterData{point(res.Max.Stress, res.Max.Response)})

	if fs := res.Features; fs != nil {
		if hyper, ok := fs.HalfMaxStress(); ok {
			markers.AddSeries("Hyper", []opts.ScatterData{point(hyper, fs.ResponseHalfMax)})
		}
		markers.AddSeries("First Peak", []opts.ScatterData{point(fs.FirstPeak.Stress, fs.FirstPeak.Response)})
		markers.AddSeries("Valley", []opts.ScatterData{point(fs.Valley.Stress, fs.Valley.Response)})

		area := make([]opts.LineData, len(fs.AreaStressSegment))
		for i, s := range fs.AreaStressSegment {
			area[i] = opts.LineData{Value: []float64{s, fs.AreaResponseSegment[i]}}
		}
		line.AddSeries(fmt.Sprintf("Area: %.2f", fs.Area), area,
			charts.WithAreaStyleOpts(opts.AreaStyle{Color: areaFill}))
	}

	line.Overlap(markers)
	return line
}

// Render writes the HTML chart of res to w.
func Render(w io.Writer, res *scan.Result) error {
	return Chart(res).Render(w)
}

// RenderFile writes the HTML chart of res to path.
func RenderFile(path string, res *scan.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	defer f.Close()

	if err := Render(f, res); err != nil {
		return fmt.Errorf("plot: %s: %w", path, err)
	}
	return f.Close()
}

func point(x, y float64) opts.ScatterData {
	return opts.ScatterData{Value: []float64{x, y}}
}

func stressAxis(k scan.Kind) string {
	if k == scan.KindOxy {
		return "pO2"
	}
	return "O"
}

func title(res *scan.Result) string {
	meta := res.Curve.Metadata()
	switch {
	case meta.MeasurementID != "":
		return meta.MeasurementID
	case meta.PatientName != "":
		return meta.PatientName
	case res.Source != "":
		return res.Source
	default:
		return res.Kind.String()
	}
}
