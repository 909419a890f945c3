package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/netpay/internal/deductions"
)

func TestRun_Text(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-basic", "16125"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	for _, expected := range []string{
		"SSS: Php720.00",
		"SSS MDF: Php0.00",
		"PhilHealth: Php322.50",
		"Pag-IBIG: Php100.00",
		"Withholding Tax: Php0.00",
		"Take-home pay: Php14,982.50",
	} {
		assert.Contains(t, stdout.String(), expected)
	}
}

func TestRun_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-basic", "40000", "-taxables", "5000", "-non-taxables", "2000", "-format", "json"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	var result deductions.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.InDelta(t, 4910.5, result.Breakdown.WithholdingTax, 1e-9)
	assert.InDelta(t, 40064.5, result.Totals.TakeHomePay, 1e-9)
}

func TestRun_PDFToFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "payslip.pdf")

	code := run([]string{"-basic", "16125", "-format", "pdf", "-o", path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRun_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"missing basic":     {},
		"negative basic":    {"-basic", "-1"},
		"negative taxables": {"-basic", "1000", "-taxables", "-1"},
		"non-numeric basic": {"-basic", "abc"},
		"NaN basic":         {"-basic", "NaN"},
		"infinite basic":    {"-basic", "Inf"},
		"infinite taxables": {"-basic", "1000", "-taxables", "+Inf"},
		"NaN non-taxables":  {"-basic", "1000", "-non-taxables", "nan"},
		"huge basic":        {"-basic", "1e308", "-taxables", "1e308"},
		"unknown format":    {"-basic", "1000", "-format", "xml"},
		"unknown flag":      {"-bonus", "1"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, exitUsage, run(args, &stdout, &stderr))
		})
	}
}

func TestRun_UsageErrorNamesFlag(t *testing.T) {
	cases := map[string]struct {
		args []string
		want string
	}{
		"missing basic":     {args: nil, want: "-basic is required"},
		"negative basic":    {args: []string{"-basic", "-1"}, want: "-basic must be greater than or equal to 0"},
		"infinite taxables": {args: []string{"-basic", "1000", "-taxables", "Inf"}, want: "-taxables must be a number"},
		"huge non-taxables": {args: []string{"-basic", "1000", "-non-taxables", "1e13"}, want: "-non-taxables must not exceed"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.Equal(t, exitUsage, run(tc.args, &stdout, &stderr))
			assert.Contains(t, stderr.String(), tc.want)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_ZeroBasicIsAccepted(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-basic", "0"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "Take-home pay: Php0.00")
}
