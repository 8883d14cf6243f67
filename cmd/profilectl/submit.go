package main

import (
	"encoding/json"
	"fmt"
	"os"

	"employee-profile-backend/internal/domain"

	"github.com/spf13/cobra"
)

var submitFile string

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit one profile from a JSON file",
	Long:  `Reads the raw profile fields (same keys as POST /v1/employees) and stores a new profile.`,
	RunE:  runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", "JSON file with the raw profile fields (required)")
	_ = submitCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(submitFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", submitFile, err)
	}

	var input domain.ProfileSubmission
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("failed to parse %s: %w", submitFile, err)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.Submissions.Submit(cmd.Context(), &input)
	if result != nil && result.State == domain.StateRejected {
		for _, msg := range result.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), "  -", msg)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Profile submitted successfully! id=%s\n", result.ProfileID)
	return nil
}
