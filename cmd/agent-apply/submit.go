// cmd/agent-apply/submit.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agent-intake/internal/form"
	"agent-intake/internal/receipt"
	"agent-intake/internal/submit"
)

var (
	flagMock       bool
	flagBaseURL    string
	flagReceiptDir string
	flagNoReceipt  bool
)

var submitCmd = &cobra.Command{
	Use:   "submit <document.json>",
	Short: "Validate and submit an application, then save a PDF receipt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st, err := loadApplication(args[0])
		if err != nil {
			return err
		}

		subCfg := submit.Config{
			BaseURL:   cfg.API.BaseURL,
			Endpoint:  cfg.API.Endpoint,
			Mock:      cfg.API.Mock,
			MockDelay: cfg.API.MockDelay(),
			Timeout:   cfg.API.RequestTimeout(),
		}
		if flagMock {
			subCfg.Mock = true
		}
		if flagBaseURL != "" {
			subCfg.BaseURL = flagBaseURL
		}

		var receipts submit.ReceiptWriter
		if !flagNoReceipt {
			dir := cfg.Receipt.OutputDir
			if flagReceiptDir != "" {
				dir = flagReceiptDir
			}
			receipts = receipt.NewWriter(dir)
		}

		submitter := submit.NewSubmitter(subCfg, log)
		flow := submit.NewFlow(st, submitter, receipts, log)

		if err := flow.Submit(cmd.Context()); err != nil {
			if errs := st.Errors(); len(errs) > 0 {
				fmt.Println("Submission failed:")
				printFieldErrors(errs)
			}
			return err
		}

		name := st.State().Value(form.FieldFullName)
		fmt.Printf("Application for %s submitted successfully.\n", name)
		if path := flow.ReceiptPath(); path != "" {
			fmt.Printf("Receipt saved to %s\n", path)
		} else if rerr := flow.ReceiptError(); rerr != nil {
			fmt.Printf("Warning: %s\n", userMessage(rerr))
		}
		return nil
	},
}

func init() {
	submitCmd.Flags().BoolVar(&flagMock, "mock", false, "simulate the backend call instead of hitting the network")
	submitCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "override the backend base URL")
	submitCmd.Flags().StringVar(&flagReceiptDir, "receipt-dir", "", "directory for the PDF receipt (default from config)")
	submitCmd.Flags().BoolVar(&flagNoReceipt, "no-receipt", false, "skip receipt generation")
}
