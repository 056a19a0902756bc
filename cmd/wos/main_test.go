package main

import (
	"testing"

	"github.com/henrybloomingdale/wos-cli/internal/wosfile"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want wosfile.Format
		err  bool
	}{
		{"auto", wosfile.FormatAuto, false},
		{"", wosfile.FormatAuto, false},
		{"plaintext", wosfile.FormatPlainText, false},
		{"plain-text", wosfile.FormatPlainText, false},
		{"Plain", wosfile.FormatPlainText, false},
		{"tab", wosfile.FormatTabDelimited, false},
		{"TSV", wosfile.FormatTabDelimited, false},
		{"tab-delimited", wosfile.FormatTabDelimited, false},
		{"xml", wosfile.FormatAuto, true},
	}

	for _, tt := range tests {
		got, err := parseFormat(tt.in)
		if tt.err {
			if err == nil {
				t.Errorf("parseFormat(%q) expected an error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFormat(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFormat(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}
