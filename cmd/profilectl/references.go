package main

import (
	"errors"
	"fmt"
	"strings"

	"employee-profile-backend/internal/domain"

	"github.com/spf13/cobra"
)

// referenceName trims a name given on the command line.
func referenceName(arg string) (string, error) {
	name := strings.TrimSpace(arg)
	if name == "" {
		return "", errors.New("name must not be blank")
	}
	return name, nil
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <kind> <name>",
	Short: "Get or create a reference value and print its id",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := referenceName(args[1])
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := a.References.Resolve(cmd.Context(), domain.ReferenceKind(args[0]), name)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), id)
		return nil
	},
}

var referencesCmd = &cobra.Command{
	Use:   "references <kind>",
	Short: "List the available values of a reference kind",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		names, err := a.References.ListNames(cmd.Context(), domain.ReferenceKind(args[0]))
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the reference and employee tables if missing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// app.Open ensures the schema as part of startup
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		a.Close()
		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd, referencesCmd, schemaCmd)
}
