package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Report summarizes a search. A search that exhausts its space without a
// match is a normal outcome with Found == false.
type Report struct {
	Values     []int64       `json:"values" yaml:"values"`
	Target     string        `json:"target" yaml:"target"`
	Strategy   string        `json:"strategy" yaml:"strategy"`
	Found      bool          `json:"found" yaml:"found"`
	Expression string        `json:"expression,omitempty" yaml:"expression,omitempty"`
	LaTeX      string        `json:"latex,omitempty" yaml:"latex,omitempty"`
	Value      string        `json:"value,omitempty" yaml:"value,omitempty"` // unreduced, as computed
	Candidates int64         `json:"candidates" yaml:"candidates"`
	Pruned     int64         `json:"pruned" yaml:"pruned"`
	Truncated  bool          `json:"truncated,omitempty" yaml:"truncated,omitempty"`
	Elapsed    time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Formats returns the supported output formats.
func Formats() []string {
	return []string{"text", "json", "yaml", "latex"}
}

// Write writes r in the named format.
func Write(w io.Writer, format string, r Report) error {
	switch format {
	case "text":
		WriteText(w, r)
		return nil
	case "json":
		return WriteJSON(w, r)
	case "yaml":
		return WriteYAML(w, r)
	case "latex":
		WriteLaTeX(w, r)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// WriteText writes "<expression> = <target>", or a not-found line.
func WriteText(w io.Writer, r Report) {
	switch {
	case r.Found:
		fmt.Fprintf(w, "%s = %s\n", r.Expression, r.Target)
	case r.Truncated:
		fmt.Fprintf(w, "no solution found within %d candidates\n", r.Candidates)
	default:
		fmt.Fprintln(w, "no solution found")
	}
}

// WriteJSON writes the report as JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteYAML writes the report as YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// latexEscape escapes underscores and other special chars for LaTeX text mode.
func latexEscape(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}

// WriteLaTeX writes a compilable LaTeX document with the result.
func WriteLaTeX(w io.Writer, r Report) {
	values := make([]string, len(r.Values))
	for i, v := range r.Values {
		values[i] = fmt.Sprintf("%d", v)
	}

	fmt.Fprintln(w, `\documentclass{article}`)
	fmt.Fprintln(w, `\usepackage{amsmath}`)
	fmt.Fprintln(w, `\usepackage{geometry}`)
	fmt.Fprintln(w, `\geometry{margin=1in}`)
	fmt.Fprintf(w, "\\title{Reaching %s from %s}\n", r.Target, strings.Join(values, ", "))
	fmt.Fprintln(w, `\date{\today}`)
	fmt.Fprintln(w, `\begin{document}`)
	fmt.Fprintln(w, `\maketitle`)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "\\noindent Strategy: \\texttt{%s}, candidates: %d, pruned: %d\\\\\n",
		latexEscape(r.Strategy), r.Candidates, r.Pruned)

	if r.Found {
		fmt.Fprintln(w, `\[`)
		fmt.Fprintf(w, "  %s = %s\n", r.LaTeX, r.Target)
		fmt.Fprintln(w, `\]`)
	} else {
		fmt.Fprintln(w, "No solution found.")
	}

	fmt.Fprintln(w, `\end{document}`)
}
