// cmd/agent-apply/validate.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"agent-intake/internal/common/errors"
	"agent-intake/internal/form"
)

var validateCmd = &cobra.Command{
	Use:   "validate <document.json>",
	Short: "Validate an application document without submitting it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadApplication(args[0])
		if err != nil {
			return err
		}

		errs := form.Validate(st.State())
		if !errs.Valid() {
			fmt.Printf("Application has %d validation error(s):\n", len(errs))
			printFieldErrors(errs)
			return errors.NewValidationFailedError(len(errs))
		}

		fmt.Println("Application is valid.")
		return nil
	},
}
