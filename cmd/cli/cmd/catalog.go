// Package cmd - catalog commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fabric-price/adapters/export"
)

var catalogOut string

// catalogCmd inspects the per-kg price table
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the per-kg price table",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List compositions and their per-kg prices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := formatter(outputFormat)
		if err != nil {
			return err
		}
		calc, err := newCalculator(cmd)
		if err != nil {
			return err
		}
		return f.RenderTable(cmd.OutOrStdout(), calc.Table())
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the price table as an XLSX workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		calc, err := newCalculator(cmd)
		if err != nil {
			return err
		}
		if err := export.SaveTable(catalogOut, calc.Table()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", catalogOut)
		return nil
	},
}

func init() {
	catalogListCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")

	catalogExportCmd.Flags().StringVarP(&catalogOut, "out", "o", "price-table.xlsx", "output file")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}
