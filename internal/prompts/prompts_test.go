// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{
		{Label: "Config", Value: "schemazod.yaml"},
		{Label: "Inputs", Value: "a.json, b.yaml"},
	}, "Initialization completed")

	out := buf.String()
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Config:")
	assert.Contains(t, out, "schemazod.yaml")
	assert.Contains(t, out, "a.json, b.yaml")
	assert.Contains(t, out, "Initialization completed")
}

func TestPrintWarning(t *testing.T) {
	var buf bytes.Buffer
	PrintWarning(&buf, "%d cyclic schema(s)", 2)
	assert.Contains(t, buf.String(), "! 2 cyclic schema(s)")
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a.json", []string{"a.json"}},
		{" a.json , b.yaml ,, ", []string{"a.json", "b.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}

func TestRequiredValidator(t *testing.T) {
	validate := requiredValidator("output")
	assert.NoError(t, validate("out.ts"))
	err := validate("  ")
	assert.EqualError(t, err, "output is required")
}
