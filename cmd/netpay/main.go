// Command netpay prints statutory deductions and take-home pay for a monthly income.
//
//	netpay -basic 16125 [-taxables 0] [-non-taxables 0] [-format text|json|pdf] [-o payslip.pdf]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Simplici0/netpay/internal/deductions"
	"github.com/Simplici0/netpay/internal/money"
	"github.com/Simplici0/netpay/internal/payslip"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var log = logrus.WithField("module", "netpay")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("netpay", flag.ContinueOnError)
	fs.SetOutput(stderr)

	basic := fs.Float64("basic", 0, "monthly basic pay (required)")
	taxables := fs.Float64("taxables", 0, "total other taxable income")
	nonTaxables := fs.Float64("non-taxables", 0, "total non-taxable income")
	format := fs.String("format", "text", "output format: text, json or pdf")
	symbol := fs.String("currency", money.DefaultSymbol, "currency symbol prefix")
	out := fs.String("o", "", "write output to this file instead of stdout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	basicSet := false
	fs.Visit(func(f *flag.Flag) { basicSet = basicSet || f.Name == "basic" })

	income := deductions.Income{BasicIncome: *basic, OtherTaxables: *taxables, NonTaxables: *nonTaxables}
	if err := validate(income, basicSet); err != nil {
		fmt.Fprintf(stderr, "netpay: %v\n", err)
		fs.Usage()
		return exitUsage
	}

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.WithError(err).Error("create output file")
			return exitError
		}
		defer f.Close()
		w = f
	}

	slip := payslip.Slip{Symbol: *symbol, Result: deductions.Calculate(income)}
	if err := write(w, *format, slip); err != nil {
		log.WithError(err).Error("write output")
		if errors.Is(err, errUnknownFormat) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

var errUnknownFormat = errors.New("unknown format")

func write(w io.Writer, format string, slip payslip.Slip) error {
	switch format {
	case "text":
		return payslip.WriteText(w, slip)
	case "pdf":
		return payslip.WritePDF(w, slip)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(slip.Result)
	default:
		return fmt.Errorf("%w %q", errUnknownFormat, format)
	}
}

func validate(income deductions.Income, basicSet bool) error {
	if !basicSet {
		return errors.New("-basic is required")
	}
	fields := []struct {
		flag  string
		value float64
	}{
		{"-basic", income.BasicIncome},
		{"-taxables", income.OtherTaxables},
		{"-non-taxables", income.NonTaxables},
	}
	for _, f := range fields {
		if err := money.CheckAmount(f.value); err != nil {
			return fmt.Errorf("%s %w", f.flag, err)
		}
	}
	return nil
}
