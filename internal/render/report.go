package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
	"github.com/conneroisu/wordmetrics/internal/metrics"
)

// Report is the document form of an analysis.
type Report struct {
	Available           bool          `json:"available" yaml:"available"`
	WordCount           int64         `json:"word_count" yaml:"word_count"`
	CharacterCount      int64         `json:"character_count" yaml:"character_count"`
	AverageWordLength   float64       `json:"average_word_length" yaml:"average_word_length"`
	Frequencies         []LengthCount `json:"frequencies" yaml:"frequencies"`
	HighestFrequency    int64         `json:"highest_frequency,omitempty" yaml:"highest_frequency,omitempty"`
	MostFrequentLengths []int         `json:"most_frequent_lengths,omitempty" yaml:"most_frequent_lengths,omitempty"`
}

// LengthCount is one row of the distribution.
type LengthCount struct {
	Length int   `json:"length" yaml:"length"`
	Count  int64 `json:"count" yaml:"count"`
}

// NewReport builds a Report from m. A nil or empty m yields a report with
// Available false.
func NewReport(m *metrics.WordLengths) Report {
	r := Report{Frequencies: []LengthCount{}}
	if !m.HasData() {
		return r
	}

	r.Available = true
	r.WordCount = m.TotalWordCount()
	r.CharacterCount = m.TotalCharacterCount()
	r.AverageWordLength = m.AverageWordLength()

	m.FrequencySnapshot().Each(func(length int, count int64) bool {
		r.Frequencies = append(r.Frequencies, LengthCount{Length: length, Count: count})
		return true
	})

	if highest, ok := m.HighestFrequency(); ok {
		r.HighestFrequency = highest
		r.MostFrequentLengths = m.LengthsWithFrequency(highest)
	}

	return r
}

// JSON renders an indented Report.
type JSON struct{}

// Render implements Renderer.
func (JSON) Render(w io.Writer, m *metrics.WordLengths) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(NewReport(m)); err != nil {
		return wmerrors.NewRenderFailure(err)
	}
	return nil
}

// YAML renders a Report as YAML.
type YAML struct{}

// Render implements Renderer.
func (YAML) Render(w io.Writer, m *metrics.WordLengths) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewReport(m)); err != nil {
		return wmerrors.NewRenderFailure(err)
	}
	if err := encoder.Close(); err != nil {
		return wmerrors.NewRenderFailure(err)
	}
	return nil
}
