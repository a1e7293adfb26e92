// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pagesync/internal/labels"
	"github.com/pdiddy/pagesync/internal/pdfdoc"
	"github.com/pdiddy/pagesync/pkg/types"
)

var labelsCmd = &cobra.Command{
	Use:   "labels <target_pdf> [offset]",
	Short: "Print the label each target page would receive, without stamping",
	Long: `Labels opens the target PDF, computes the label for every page with the
given offset, and prints the mapping as YAML. Nothing is written to disk.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLabels,
}

func runLabels(cmd *cobra.Command, args []string) error {
	cfg, err := stampConfig()
	if err != nil {
		return err
	}
	if len(args) == 2 {
		offset, err := labels.ParseOffset(args[1])
		if err != nil {
			return err
		}
		cfg.Offset = offset
	}
	cmd.SilenceUsage = true

	doc, err := pdfdoc.NewOpener(nil, cfg.Validation).Open(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	plan := labelPlan(args[0], doc.PageCount(), labels.Options{Offset: cfg.Offset})
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return err
	}
	return enc.Close()
}

func labelPlan(target string, pages int, opt labels.Options) types.LabelPlan {
	plan := types.LabelPlan{
		Target: target,
		Offset: opt.Offset,
		Pages:  pages,
		Labels: make([]types.PageLabel, 0, pages),
	}
	for i, l := range labels.Sequence(pages, opt) {
		plan.Labels = append(plan.Labels, types.PageLabel{Page: i + 1, Label: l.String()})
	}
	return plan
}

func init() {
	labelsCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(labelsCmd)
}
