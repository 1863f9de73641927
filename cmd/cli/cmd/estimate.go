// Package cmd - estimate command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fabric-price/core/pricing"
	"fabric-price/core/types"
	"fabric-price/internal/logging"
)

var (
	outputFormat string
	gsm          int
	width        int
	composition  string
	processing   string
	color        string
)

// estimateCmd groups the three pricing models
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the price of one fabric",
	Long: `Estimate the price per meter and per kg of one fabric.

Examples:
  fabric-price estimate table --gsm 200 --width 175 --composition "CVC 60% Cotton 40% Polyester" --processing printing
  fabric-price estimate regression --gsm 180 --width 160 --color "grey melange"
  fabric-price estimate plain --gsm 220 --width 185 --format json`,
}

var estimateTableCmd = &cobra.Command{
	Use:   "table",
	Short: "Price from the per-kg table by composition and processing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := types.ParseProcessingType(processing)
		if err != nil {
			return err
		}
		return runEstimate(cmd, pricing.Request{
			Model:       types.ModelTable,
			Composition: types.Composition(composition),
			Processing:  p,
		})
	},
}

var estimateRegressionCmd = &cobra.Command{
	Use:   "regression",
	Short: "Price from the color regression",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := types.ParseColor(color)
		if err != nil {
			return err
		}
		return runEstimate(cmd, pricing.Request{Model: types.ModelRegression, Color: c})
	},
}

var estimatePlainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Price " + string(types.PlainComposition) + " from the plain regression",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEstimate(cmd, pricing.Request{Model: types.ModelRegressionPlain})
	},
}

func init() {
	for _, c := range []*cobra.Command{estimateTableCmd, estimateRegressionCmd, estimatePlainCmd} {
		c.Flags().IntVar(&gsm, "gsm", 0, "fabric weight in g/m² (120-300)")
		c.Flags().IntVar(&width, "width", 0, "fabric width in cm (150-200)")
		c.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
		_ = c.MarkFlagRequired("gsm")
		_ = c.MarkFlagRequired("width")
		estimateCmd.AddCommand(c)
	}

	estimateTableCmd.Flags().StringVarP(&composition, "composition", "c", "", "fabric composition, as listed by 'catalog list'")
	estimateTableCmd.Flags().StringVarP(&processing, "processing", "p", string(types.ProcessingBasicJersey), "processing type (basic-jersey, printing, fleece)")
	_ = estimateTableCmd.MarkFlagRequired("composition")

	estimateRegressionCmd.Flags().StringVar(&color, "color", string(types.ColorWhite), "color (white, light, medium, dark, grey-melange)")
}

func runEstimate(cmd *cobra.Command, req pricing.Request) error {
	req.GSM = gsm
	req.WidthCm = width

	f, err := formatter(outputFormat)
	if err != nil {
		return err
	}

	logging.Debug("estimating",
		zap.String("model", string(req.Model)),
		zap.Int("gsm", req.GSM),
		zap.Int("width", req.WidthCm))

	calc, err := newCalculator(cmd)
	if err != nil {
		return err
	}
	result, err := calc.Estimate(req)
	if err != nil {
		return err
	}

	return f.RenderEstimate(cmd.OutOrStdout(), &result)
}
