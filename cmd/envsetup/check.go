package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/classreg/envsetup/internal/envfile"
	"github.com/classreg/envsetup/internal/setup"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate an existing env file against the expected schema",
	Long: `Check reads an env file (default .env) and verifies it offline: every
expected key must be present and every value must pass the same
validation the wizard applies. Nothing is contacted and nothing is
written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := ".env"
	if len(args) > 0 {
		path = args[0]
	}

	values, err := envfile.Load(path)
	if err != nil {
		return err
	}

	issues := setup.Check(values)
	if len(issues) == 0 {
		fmt.Printf("%s %s passes all checks\n", successStyle.Render("✓"), path)
		return nil
	}
	for _, issue := range issues {
		fmt.Printf("%s %s\n", errorStyle.Render("✗"), issue)
	}
	return fmt.Errorf("validation failed for %s", path)
}
