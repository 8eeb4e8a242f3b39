package series

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"OmegaScreen/internal/model"
)

// Required header names, matched verbatim after trimming surrounding
// whitespace. These are the column names of a TradingView export.
const (
	HeaderTime        = "time"
	HeaderClose       = "close"
	HeaderVolumeDelta = "Volume Delta (Close)"
)

// MinPeriods is the shortest series the trend analysis accepts.
const MinPeriods = 90

// ValidationKind identifies why a submission was rejected.
type ValidationKind string

const (
	MissingHeaders      ValidationKind = "missing_headers"
	InsufficientPeriods ValidationKind = "insufficient_periods"
	InvalidNumericData  ValidationKind = "invalid_numeric_data"
)

// ValidationError is the caller-facing rejection for a pasted series.
// Submissions are rejected as a whole; the trend fit must run over a
// contiguous, uncorrupted window, so partial analysis is disallowed.
type ValidationError struct {
	Kind   ValidationKind
	Detail string

	// Missing names the absent header fields for MissingHeaders.
	Missing []string
	// Found/Required are populated for InsufficientPeriods.
	Found    int
	Required int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func missingHeadersErr(missing []string) *ValidationError {
	return &ValidationError{
		Kind:    MissingHeaders,
		Detail:  fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")),
		Missing: missing,
	}
}

func insufficientPeriodsErr(found int) *ValidationError {
	return &ValidationError{
		Kind:     InsufficientPeriods,
		Detail:   fmt.Sprintf("insufficient data: %d periods found, minimum is %d", found, MinPeriods),
		Found:    found,
		Required: MinPeriods,
	}
}

func invalidNumericErr(detail string) *ValidationError {
	return &ValidationError{Kind: InvalidNumericData, Detail: detail}
}

// Ingest parses raw delimited text (comma, semicolon, or tab separated)
// into a validated series of at least MinPeriods rows. Rows come back in
// the order supplied, which is taken as chronological. On rejection the
// returned error is a *ValidationError.
func Ingest(raw string) ([]model.SeriesRow, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, missingHeadersErr([]string{HeaderTime, HeaderClose, HeaderVolumeDelta})
	}

	reader := csv.NewReader(strings.NewReader(raw))
	reader.Comma = detectDelimiter(raw)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, invalidNumericErr(fmt.Sprintf("malformed input: %v", err))
	}
	if len(records) == 0 {
		return nil, missingHeadersErr([]string{HeaderTime, HeaderClose, HeaderVolumeDelta})
	}

	timeIdx, closeIdx, deltaIdx := -1, -1, -1
	for i, cell := range records[0] {
		switch strings.TrimSpace(cell) {
		case HeaderTime:
			timeIdx = i
		case HeaderClose:
			closeIdx = i
		case HeaderVolumeDelta:
			deltaIdx = i
		}
	}
	var missing []string
	if timeIdx < 0 {
		missing = append(missing, HeaderTime)
	}
	if closeIdx < 0 {
		missing = append(missing, HeaderClose)
	}
	if deltaIdx < 0 {
		missing = append(missing, HeaderVolumeDelta)
	}
	if len(missing) > 0 {
		return nil, missingHeadersErr(missing)
	}

	data := records[1:]
	if len(data) < MinPeriods {
		return nil, insufficientPeriodsErr(len(data))
	}

	rows := make([]model.SeriesRow, 0, len(data))
	width := maxIdx(timeIdx, closeIdx, deltaIdx) + 1
	for i, rec := range data {
		if len(rec) < width {
			return nil, invalidNumericErr(fmt.Sprintf("row %d has %d fields, expected at least %d", i+1, len(rec), width))
		}
		closeVal, err := strconv.ParseFloat(strings.TrimSpace(rec[closeIdx]), 64)
		if err != nil {
			return nil, invalidNumericErr(fmt.Sprintf("row %d: invalid close value %q", i+1, rec[closeIdx]))
		}
		deltaVal, err := strconv.ParseFloat(strings.TrimSpace(rec[deltaIdx]), 64)
		if err != nil {
			return nil, invalidNumericErr(fmt.Sprintf("row %d: invalid volume delta value %q", i+1, rec[deltaIdx]))
		}
		rows = append(rows, model.SeriesRow{
			Time:        strings.TrimSpace(rec[timeIdx]),
			Close:       closeVal,
			VolumeDelta: deltaVal,
		})
	}
	return rows, nil
}

// detectDelimiter picks the separator that appears most often in the header
// line. Comma wins ties; TradingView exports are comma-separated, but
// semicolon and tab variants show up in pasted data.
func detectDelimiter(raw string) rune {
	header := raw
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		header = raw[:i]
	}
	best, bestCount := ',', strings.Count(header, ",")
	for _, c := range []rune{';', '\t'} {
		if n := strings.Count(header, string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}
	return best
}

func maxIdx(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
