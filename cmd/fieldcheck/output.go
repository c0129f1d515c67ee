package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputText = "text"
)

// outputFormat is a pflag.Value that rejects unknown formats at parse time.
type outputFormat struct {
	value string
}

var _ pflag.Value = (*outputFormat)(nil)

func newOutputFormat(def string) *outputFormat {
	return &outputFormat{value: def}
}

func (o *outputFormat) String() string { return o.value }
func (o *outputFormat) Type() string   { return "format" }

func (o *outputFormat) Set(s string) error {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case outputJSON, outputYAML, outputText:
		o.value = s
		return nil
	}
	return fmt.Errorf("must be one of %s, %s, %s", outputJSON, outputYAML, outputText)
}

// typeEntry is the printable form of a supported tag.
type typeEntry struct {
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
}

func writeResult(w io.Writer, format string, res validator.Result) error {
	switch format {
	case outputYAML:
		return writeYAML(w, res)
	case outputText:
		if res.Valid {
			_, err := fmt.Fprintln(w, "valid")
			return err
		}
		_, err := fmt.Fprintf(w, "invalid: %s\n", res.Error)
		return err
	default:
		return writeJSON(w, res)
	}
}

func writeTypes(w io.Writer, format string, entries []typeEntry) error {
	switch format {
	case outputYAML:
		return writeYAML(w, entries)
	case outputText:
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%-20s %s\n", e.Type, e.Message); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeJSON(w, entries)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
