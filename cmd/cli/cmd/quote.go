// Package cmd - quote command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fabric-price/adapters/export"
	"fabric-price/adapters/quote/hcl"
	"fabric-price/core/quote"
	"fabric-price/internal/errors"
	"fabric-price/internal/logging"
)

var quoteXLSX string

// quoteCmd prices every fabric of a quote file
var quoteCmd = &cobra.Command{
	Use:   "quote <file.hcl>",
	Short: "Price a quote file",
	Long: `Price every fabric block of an HCL quote file.

A quote file holds one fabric block per line and an optional defaults block:

  defaults {
    model      = "table"
    processing = "printing"
  }

  fabric "body" {
    gsm         = 200
    width       = 175
    composition = "CVC 60% Cotton 40% Polyester"
    meters      = 120
  }

Examples:
  fabric-price quote order.hcl
  fabric-price quote order.hcl --format markdown
  fabric-price quote order.hcl --xlsx order.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	quoteCmd.Flags().StringVar(&quoteXLSX, "xlsx", "", "also write the quote to an XLSX workbook")
}

func runQuote(cmd *cobra.Command, args []string) error {
	f, err := formatter(outputFormat)
	if err != nil {
		return err
	}

	calc, err := newCalculator(cmd)
	if err != nil {
		return err
	}

	lines, err := hcl.NewScanner().ParseFile(args[0])
	if err != nil {
		return err
	}
	logging.Debug("parsed quote file", zap.String("file", args[0]), zap.Int("lines", len(lines)))

	q := quote.Build(calc, lines)
	if err := f.RenderQuote(cmd.OutOrStdout(), q); err != nil {
		return err
	}

	if quoteXLSX != "" {
		if err := export.SaveQuote(quoteXLSX, q); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", quoteXLSX)
	}

	if q.Failed > 0 {
		for i := range q.Lines {
			if err := q.Lines[i].Err(); err != nil {
				logging.Debug("line not priced", zap.String("line", q.Lines[i].Name), zap.Error(err))
			}
		}
		return errors.Newf(errors.TypePricing, "%d of %d lines could not be priced", q.Failed, len(q.Lines))
	}
	return nil
}
