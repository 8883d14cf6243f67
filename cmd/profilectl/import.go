package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	importFile  string
	templateOut string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Submit every row of an .xlsx workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", importFile, err)
		}
		defer f.Close()

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.Imports.Import(cmd.Context(), f)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, row := range report.Rows {
			fmt.Fprintf(out, "row %d: %s\n", row.Row, row.State)
			for _, msg := range row.Errors {
				fmt.Fprintf(out, "  - %s\n", msg)
			}
		}
		fmt.Fprintf(out, "%d rows: %d committed, %d rejected, %d failed\n",
			report.Total, report.Committed, report.Rejected, report.Failed)
		return nil
	},
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write an empty import workbook with the header row",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		data, err := a.Imports.Template()
		if err != nil {
			return err
		}
		if err := os.WriteFile(templateOut, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", templateOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", templateOut)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "xlsx workbook to import (required)")
	_ = importCmd.MarkFlagRequired("file")
	templateCmd.Flags().StringVarP(&templateOut, "out", "o", "employee_import.xlsx", "output path")
	rootCmd.AddCommand(importCmd, templateCmd)
}
