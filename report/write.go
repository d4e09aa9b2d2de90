package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// Format selects an export encoding.
type Format string

const (
	// FormatJSON is an indented JSON array of rows.
	FormatJSON Format = "json"
	// FormatCSV is comma-separated text with a header line.
	FormatCSV Format = "csv"
	// FormatParquet is a Snappy-compressed Parquet file.
	FormatParquet Format = "parquet"
)

// ErrUnknownFormat is returned for unsupported export formats.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatCSV, FormatParquet:
		return f, nil
	default:
		return "", fmt.Errorf("report: %w: %q", ErrUnknownFormat, name)
	}
}

// WriteFile writes rows to path in the given format.
func WriteFile(path string, format Format, rows []Row) error {
	switch format {
	case FormatParquet:
		return WriteParquet(path, rows)
	case FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("report: %w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if format == FormatJSON {
		err = WriteJSON(f, rows)
	} else {
		err = WriteCSV(f, rows)
	}
	if err != nil {
		return err
	}
	return f.Close()
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

var csvHeader = []string{
	"source", "kind", "measurement_id", "date", "instrument_info", "patient_name",
	"lower_limit", "upper_limit",
	"response_max", "stress_at_max", "stress_at_max_index",
	"response_half_max", "stress_at_half_max",
	"first_peak_stress", "first_peak_response",
	"valley_stress", "valley_response", "area",
}

// WriteCSV writes rows with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Source,
			r.Kind,
			r.MeasurementID,
			r.Date,
			r.InstrumentInfo,
			r.PatientName,
			formatFloat(r.LowerLimit),
			formatFloat(r.UpperLimit),
			formatFloat(r.ResponseMax),
			formatFloat(r.StressAtMax),
			strconv.Itoa(r.StressAtMaxIndex),
			formatFloatPtr(r.ResponseHalfMax),
			formatFloatPtr(r.StressAtHalfMax),
			formatFloatPtr(r.FirstPeakStress),
			formatFloatPtr(r.FirstPeakResponse),
			formatFloatPtr(r.ValleyStress),
			formatFloatPtr(r.ValleyResponse),
			formatFloatPtr(r.Area),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type parquetRow struct {
	Source            string  `parquet:"name=source, type=BYTE_ARRAY, convertedtype=UTF8"`
	Kind              string  `parquet:"name=kind, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	MeasurementID     string  `parquet:"name=measurement_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Date              string  `parquet:"name=date, type=BYTE_ARRAY, convertedtype=UTF8"`
	InstrumentInfo    string  `parquet:"name=instrument_info, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	PatientName       string  `parquet:"name=patient_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	LowerLimit        float64 `parquet:"name=lower_limit, type=DOUBLE"`
	UpperLimit        float64 `parquet:"name=upper_limit, type=DOUBLE"`
	ResponseMax       float64 `parquet:"name=response_max, type=DOUBLE"`
	StressAtMax       float64 `parquet:"name=stress_at_max, type=DOUBLE"`
	StressAtMaxIndex  int64   `parquet:"name=stress_at_max_index, type=INT64"`
	ResponseHalfMax   float64 `parquet:"name=response_half_max, type=DOUBLE"`
	StressAtHalfMax   float64 `parquet:"name=stress_at_half_max, type=DOUBLE"`
	FirstPeakStress   float64 `parquet:"name=first_peak_stress, type=DOUBLE"`
	FirstPeakResponse float64 `parquet:"name=first_peak_response, type=DOUBLE"`
	ValleyStress      float64 `parquet:"name=valley_stress, type=DOUBLE"`
	ValleyResponse    float64 `parquet:"name=valley_response, type=DOUBLE"`
	Area              float64 `parquet:"name=area, type=DOUBLE"`
}

// WriteParquet writes rows to a Snappy-compressed Parquet file at path.
func WriteParquet(path string, rows []Row) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	if err := writeParquet(fw, rows); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

// MarshalParquet encodes rows as an in-memory Parquet file.
func MarshalParquet(rows []Row) ([]byte, error) {
	fw := buffer.NewBufferFile()
	if err := writeParquet(fw, rows); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return append([]byte(nil), fw.Bytes()...), nil
}

func writeParquet(fw source.ParquetFile, rows []Row) error {
	pw, err := writer.NewParquetWriter(fw, new(parquetRow), 4)
	if err != nil {
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, r := range rows {
		row := parquetRow{
			Source:            r.Source,
			Kind:              r.Kind,
			MeasurementID:     r.MeasurementID,
			Date:              r.Date,
			InstrumentInfo:    r.InstrumentInfo,
			PatientName:       r.PatientName,
			LowerLimit:        r.LowerLimit,
			UpperLimit:        r.UpperLimit,
			ResponseMax:       r.ResponseMax,
			StressAtMax:       r.StressAtMax,
			StressAtMaxIndex:  int64(r.StressAtMaxIndex),
			ResponseHalfMax:   valueOrNaN(r.ResponseHalfMax),
			StressAtHalfMax:   valueOrNaN(r.StressAtHalfMax),
			FirstPeakStress:   valueOrNaN(r.FirstPeakStress),
			FirstPeakResponse: valueOrNaN(r.FirstPeakResponse),
			ValleyStress:      valueOrNaN(r.ValleyStress),
			ValleyResponse:    valueOrNaN(r.ValleyResponse),
			Area:              valueOrNaN(r.Area),
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			return err
		}
	}
	return pw.WriteStop()
}

func valueOrNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
