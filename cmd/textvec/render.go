package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/poiesic/textvec/core"
	"gopkg.in/yaml.v3"
)

// report is the document written to stdout. Only the artefacts requested by
// the command are set; nil fields are left out of the output.
type report struct {
	Features *[]string          `json:"features,omitempty" yaml:"features,omitempty"`
	Digest   string             `json:"digest,omitempty" yaml:"digest,omitempty"`
	Counts   *core.CountMatrix  `json:"counts,omitempty" yaml:"counts,omitempty"`
	TF       *core.WeightMatrix `json:"tf,omitempty" yaml:"tf,omitempty"`
	IDF      *core.WeightVector `json:"idf,omitempty" yaml:"idf,omitempty"`
	TFIDF    *core.WeightMatrix `json:"tfidf,omitempty" yaml:"tfidf,omitempty"`
}

func render(w io.Writer, format string, r *report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		return renderTable(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderTable(w io.Writer, r *report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	var features []string
	if r.Features != nil {
		features = *r.Features
	}

	if r.Digest != "" {
		fmt.Fprintf(tw, "digest\t%s\t\n", r.Digest)
	}
	if r.Features != nil && r.Counts == nil && r.TF == nil && r.IDF == nil && r.TFIDF == nil {
		for i, name := range features {
			fmt.Fprintf(tw, "%d\t%s\t\n", i, displayToken(name))
		}
		return tw.Flush()
	}

	header := func(title string) {
		fmt.Fprintf(tw, "\n%s\t", title)
		for _, name := range features {
			fmt.Fprintf(tw, "%s\t", displayToken(name))
		}
		fmt.Fprintln(tw)
	}

	if r.Counts != nil {
		header("counts")
		for i, row := range *r.Counts {
			fmt.Fprintf(tw, "doc %d\t", i)
			for _, c := range row {
				fmt.Fprintf(tw, "%d\t", c)
			}
			fmt.Fprintln(tw)
		}
	}
	if r.TF != nil {
		header("tf")
		for i, row := range *r.TF {
			writeWeights(tw, fmt.Sprintf("doc %d", i), row)
		}
	}
	if r.IDF != nil {
		header("idf")
		writeWeights(tw, "idf", *r.IDF)
	}
	if r.TFIDF != nil {
		header("tfidf")
		for i, row := range *r.TFIDF {
			writeWeights(tw, fmt.Sprintf("doc %d", i), row)
		}
	}
	return tw.Flush()
}

func writeWeights(w io.Writer, label string, row []float64) {
	fmt.Fprintf(w, "%s\t", label)
	for _, v := range row {
		fmt.Fprintf(w, "%s\t", strconv.FormatFloat(v, 'f', core.Precision, 64))
	}
	fmt.Fprintln(w)
}

// displayToken makes empty tokens visible in table output.
func displayToken(token string) string {
	if token == "" {
		return `""`
	}
	return token
}
