package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/classreg/envsetup/internal/util"
	"github.com/classreg/envsetup/internal/wizard"
)

// version is overridden at release time via -ldflags.
var version = "0.1.0"

var (
	cfg util.Config

	rootCmd = &cobra.Command{
		Use:   "envsetup",
		Short: "Interactive environment configuration for the class registration backend",
		Long: `envsetup walks an operator through every deployment setting the class
registration backend needs (JWT, AWS, application, security, CORS and an
optional local DynamoDB endpoint), validates each answer, and writes a
grouped, commented .env file.

Nothing is read from or sent to a live environment; the result is a
plain text file for your deployment.`,
		RunE: runSetup,
	}
)

func init() {
	rootCmd.Flags().StringVarP(&cfg.OutputPath, "output", "o", ".env", "path of the env file to write")
	rootCmd.Flags().BoolVarP(&cfg.Force, "force", "f", false, "overwrite an existing file without asking")
	rootCmd.Flags().BoolVar(&cfg.Plain, "plain", false, "plain line prompts (automatic when stdin is not a terminal)")
	rootCmd.Flags().StringVar(&cfg.Theme, "theme", "charm", "form theme: "+strings.Join(wizard.ThemeNames(), "|"))
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(checkCmd)
}

// Execute runs the CLI; fang adds styled help, --version and SIGINT
// notification on top of cobra.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func runSetup(cmd *cobra.Command, args []string) error {
	sess := wizard.NewSession(newPrompter(), os.Stdout, newLogger(), wizard.Options{
		OutputPath: cfg.OutputPath,
		Force:      cfg.Force,
	})
	err := sess.Run(cmd.Context())
	if errors.Is(err, wizard.ErrCancelled) {
		// Backing out is a clean exit, not a failure.
		return nil
	}
	return err
}

// newPrompter picks form mode on a terminal and line mode for pipes,
// scripts and --plain runs.
func newPrompter() wizard.Prompter {
	if cfg.Plain || !term.IsTerminal(int(os.Stdin.Fd())) {
		return wizard.NewConsole(os.Stdin, os.Stdout)
	}
	return wizard.NewForms(wizard.Theme(cfg.Theme))
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "envsetup"})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
