// cmd/agent-apply/root.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agent-intake/internal/common/config"
	"agent-intake/internal/common/errors"
	"agent-intake/internal/common/logger"
	"agent-intake/internal/common/validation"
	"agent-intake/internal/form"
	"agent-intake/internal/models"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	zapLog *zap.Logger
	log    logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "agent-apply",
	Short: "BrightLife agent application intake",
	Long: `agent-apply validates and submits BrightLife agent applications.

An application is a JSON document holding the applicant's details plus
references to attachment files. "validate" checks it locally; "submit"
sends it to the registration backend and saves a PDF receipt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zapLog = logger.New(flagLogLevel, flagLogFormat)
		log = logger.NewZapAdapter(zapLog)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zapLog.Sync()
	},
}

// Execute runs the CLI. Errors are printed once here; commands return them
// silently.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", userMessage(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a config file (default: configs/config.yaml discovery)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "console", "log format (console, json)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(directoryCmd)
}

func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.LoadFromFile(flagConfig)
	}
	return config.Load()
}

// loadApplication reads a document, checks its shape, and fills a fresh form
// store from it. Attachments are loaded from disk relative to the caller's
// working directory.
func loadApplication(path string) (*form.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInvalidDocumentError(err.Error())
	}

	res, err := validation.ValidateApplicationDocument(data)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		details := ""
		for _, ve := range res.Errors {
			if details != "" {
				details += "; "
			}
			details += fmt.Sprintf("%s: %s", ve.Field, ve.Message)
		}
		return nil, errors.NewInvalidDocumentError(details)
	}

	app, err := models.ParseApplication(data)
	if err != nil {
		return nil, err
	}

	st := form.NewStore()
	if err := app.Populate(st, os.ReadFile); err != nil {
		return nil, err
	}
	return st, nil
}

// userMessage keeps the console output to the safe message plus details for
// local errors; structured logs carry the rest.
func userMessage(err error) string {
	se, ok := errors.AsStandardError(err)
	if !ok {
		return err.Error()
	}
	if se.Details != "" && se.Code != errors.ErrCodeSubmissionFailed {
		return fmt.Sprintf("%s (%s)", se.Message, se.Details)
	}
	return se.Message
}

// printFieldErrors renders the validation error map in canonical field order.
func printFieldErrors(errs form.ErrorMap) {
	fields := append(form.StringFields(), form.FileFields()...)
	fields = append(fields, form.FieldAgreeTerms, form.FieldGeneral)
	for _, f := range fields {
		if msg, ok := errs[f]; ok {
			fmt.Printf("  %-22s %s\n", string(f)+":", msg)
		}
	}
}
