package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const (
	bannerTitle  = "Statistics Calculator"
	resultsOpen  = "=== Statistics Results ==="
	resultsClose = "========================"
	noMode       = "No mode"
)

// ErrUnknownFormat is returned for an output format no renderer handles.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer writes one report per dataset. Close flushes anything buffered.
type Renderer interface {
	Render(d Dataset, s Summary) error
	Close() error
}

// Document is the serialized shape of one report.
type Document struct {
	Name    string `json:"name" yaml:"name"`
	Data    []int  `json:"data" yaml:"data"`
	Summary `yaml:",inline"`
}

func newRenderer(format string, w io.Writer) (Renderer, error) {
	switch format {
	case FormatText:
		return &textRenderer{w: w}, nil
	case FormatTable:
		return &tableRenderer{w: w}, nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return &jsonRenderer{enc: enc}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlRenderer{enc: enc}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// writeBanner prints the program header used by the human-readable formats.
func writeBanner(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", bannerTitle, strings.Repeat("=", len(bannerTitle)))
	return err
}

type textRenderer struct {
	w io.Writer
}

func (r *textRenderer) Render(d Dataset, s Summary) error {
	var b strings.Builder
	b.WriteString("\n" + resultsOpen + "\n")
	b.WriteString("Data: " + joinInts(d.Sample) + "\n\n")
	fmt.Fprintf(&b, "Mean: %.2f\n", s.Mean)
	fmt.Fprintf(&b, "Median: %.2f\n", s.Median)
	b.WriteString("Mode: " + formatMode(s.Mode) + "\n")
	b.WriteString(resultsClose + "\n\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) Close() error { return nil }

type tableRenderer struct {
	w io.Writer
}

func (r *tableRenderer) Render(d Dataset, s Summary) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(d.Name)
	tbl.AppendHeader(table.Row{"Statistic", "Value"})
	tbl.AppendRows([]table.Row{
		{"Data", joinInts(d.Sample)},
		{"Mean", fmt.Sprintf("%.2f", s.Mean)},
		{"Median", fmt.Sprintf("%.2f", s.Median)},
		{"Mode", formatMode(s.Mode)},
	})

	_, err := io.WriteString(r.w, "\n"+tbl.Render()+"\n")
	return err
}

func (r *tableRenderer) Close() error { return nil }

type jsonRenderer struct {
	enc *json.Encoder
}

func (r *jsonRenderer) Render(d Dataset, s Summary) error {
	return r.enc.Encode(newDocument(d, s))
}

func (r *jsonRenderer) Close() error { return nil }

type yamlRenderer struct {
	enc *yaml.Encoder
}

func (r *yamlRenderer) Render(d Dataset, s Summary) error {
	return r.enc.Encode(newDocument(d, s))
}

func (r *yamlRenderer) Close() error { return r.enc.Close() }

func newDocument(d Dataset, s Summary) Document {
	data := d.Sample
	if data == nil {
		data = []int{}
	}
	return Document{Name: d.Name, Data: data, Summary: s}
}

func formatMode(m ModeSet) string {
	if m.Empty() {
		return noMode
	}
	return fmt.Sprintf("%s (frequency: %d)", joinInts(m.Values), m.Frequency)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
