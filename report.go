package mixprobe

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	proberrors "github.com/tamirms/mixprobe/errors"
)

// Reporter receives results as a run progresses.
type Reporter interface {
	ReportTrial(TrialResult) error
	ReportSummary(Summary) error
}

// NewReporter returns the reporter for a format name: "text" (or empty) or
// "json".
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case "", "text":
		return NewTextReporter(w), nil
	case "json":
		return NewJSONReporter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", proberrors.ErrUnknownFormat, format)
	}
}

// TextReporter writes one "Collisions: <n>" line per trial and a final
// "Average collisions: <avg>" line.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a TextReporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (r *TextReporter) ReportTrial(res TrialResult) error {
	_, err := fmt.Fprintf(r.w, "Collisions: %d\n", res.Collisions)
	return err
}

func (r *TextReporter) ReportSummary(s Summary) error {
	_, err := fmt.Fprintf(r.w, "Average collisions: %s\n", formatAverage(s.Average))
	return err
}

// formatAverage renders f as the shortest decimal that round-trips, always
// with a fractional part: 36.85, 37.0.
func formatAverage(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// JSONReporter writes one JSON object per line: one per trial, then the
// summary. Intended for external charting tools.
type JSONReporter struct {
	enc *json.Encoder
}

// NewJSONReporter returns a JSONReporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(w)}
}

func (r *JSONReporter) ReportTrial(res TrialResult) error {
	return r.enc.Encode(res)
}

func (r *JSONReporter) ReportSummary(s Summary) error {
	return r.enc.Encode(s)
}
