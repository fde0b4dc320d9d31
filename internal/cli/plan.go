package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/cutplan/internal/costing"
	"github.com/piwi3910/cutplan/internal/engine"
	"github.com/piwi3910/cutplan/internal/export"
	"github.com/piwi3910/cutplan/internal/importer"
	"github.com/piwi3910/cutplan/internal/project"
)

// planOptions holds the flag values of the plan command.
type planOptions struct {
	configPath     string
	propertiesPath string
	outputPDF      string
	labelsPath     string
	xlsxPath       string
	dxfPath        string
	kerf           float64
	ignoreWrap     bool
}

func newPlanCmd() *cobra.Command {
	opts := planOptions{}

	cmd := &cobra.Command{
		Use:   "plan <items.csv> <materials.csv>",
		Short: "Pack an item list onto stock boards and price the result",
		Long: `Plan reads an item list and a material list (CSV or XLSX), validates
edge-banding constraints, assigns unpinned items to the cheapest fitting
material, packs every item unit onto boards, and writes the priced plan.

Any validation or fit failure aborts the run; no partial plan is written.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "application config file (default ~/.cutplan/config.json)")
	cmd.Flags().StringVarP(&opts.propertiesPath, "properties", "p", "", "job properties file overriding config values")
	cmd.Flags().StringVarP(&opts.outputPDF, "output", "o", "cutplan.pdf", "output PDF path")
	cmd.Flags().StringVar(&opts.labelsPath, "labels", "", "also write QR-coded cut labels PDF to this path")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "also write an Excel workbook to this path")
	cmd.Flags().StringVar(&opts.dxfPath, "dxf", "", "also write a DXF drawing to this path")
	cmd.Flags().Float64Var(&opts.kerf, "kerf", 0, "saw kerf width in mm (overrides config)")
	cmd.Flags().BoolVar(&opts.ignoreWrap, "ignore-wrap-rules", false, "skip edge-banding size validation")

	return cmd
}

func runPlan(cmd *cobra.Command, itemsPath, materialsPath string, opts planOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	configPath := opts.configPath
	if configPath == "" {
		configPath = project.DefaultConfigPath()
	}
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", configPath, err)
	}
	saved := config // persisted again below without job-level overrides

	if opts.propertiesPath != "" {
		props, err := project.ParseProperties(opts.propertiesPath)
		if err != nil {
			return fmt.Errorf("loading properties %s: %w", opts.propertiesPath, err)
		}
		config = project.ApplyProperties(config, props)
		logger.Debug("applied job properties", "path", opts.propertiesPath, "keys", len(props))
	}

	if cmd.Flags().Changed("kerf") {
		config.KerfWidth = opts.kerf
	}
	enforce := config.EnforceWrapRules && !opts.ignoreWrap

	items := importer.ImportItems(itemsPath)
	for _, w := range items.Warnings {
		logger.Warn(w, "file", itemsPath)
	}
	if len(items.Errors) > 0 {
		return fmt.Errorf("items file %s:\n%s", itemsPath, strings.Join(items.Errors, "\n"))
	}
	logger.Info("loaded items", "count", len(items.Items), "file", itemsPath)

	materials := importer.ImportMaterials(materialsPath)
	for _, w := range materials.Warnings {
		logger.Warn(w, "file", materialsPath)
	}
	if len(materials.Errors) > 0 {
		return fmt.Errorf("materials file %s:\n%s", materialsPath, strings.Join(materials.Errors, "\n"))
	}
	logger.Info("loaded materials", "count", len(materials.Materials), "file", materialsPath)

	plan, err := engine.Plan(items.Items, materials.Materials, materials.Order, config.KerfWidth, enforce)
	if err != nil {
		return err
	}
	logger.Info("packed plan", "boards", plan.BoardCount(), "items", plan.PlacedCount(), "kerf", config.KerfWidth)

	summary := costing.Compute(plan, costing.Rates{
		CutCostPerMM:  config.CutCostPerMM,
		WrapCostPerMM: config.WrapCostPerMM,
		Currency:      config.Currency,
	})

	if err := export.ExportPDF(opts.outputPDF, plan, summary); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	logger.Info("wrote report", "path", opts.outputPDF)

	if opts.labelsPath != "" {
		if err := export.ExportLabels(opts.labelsPath, plan); err != nil {
			return fmt.Errorf("writing labels: %w", err)
		}
		logger.Info("wrote labels", "path", opts.labelsPath)
	}
	if opts.xlsxPath != "" {
		if err := export.ExportXLSX(opts.xlsxPath, plan, summary); err != nil {
			return fmt.Errorf("writing XLSX: %w", err)
		}
		logger.Info("wrote workbook", "path", opts.xlsxPath)
	}
	if opts.dxfPath != "" {
		if err := export.ExportDXF(opts.dxfPath, plan); err != nil {
			return fmt.Errorf("writing DXF: %w", err)
		}
		logger.Info("wrote drawing", "path", opts.dxfPath)
	}

	saved.AddRecentJob(itemsPath)
	if err := project.SaveAppConfig(configPath, saved); err != nil {
		logger.Warn("could not update recent jobs", "path", configPath, "err", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Total cost: %.2f %s\n", summary.GrandTotal, summary.Currency)
	return nil
}
