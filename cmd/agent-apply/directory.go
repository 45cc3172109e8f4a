// cmd/agent-apply/directory.go
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"agent-intake/internal/content"
)

var flagDirectoryJSON bool

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Print the BrightLife leadership team and partner network",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		team := content.TeamMembers()
		partners := content.HospitalPartners()

		if flagDirectoryJSON {
			out := struct {
				Team             []content.TeamMember `json:"team"`
				InsurancePartner string               `json:"insurancePartner"`
				HospitalPartners []content.Partner    `json:"hospitalPartners"`
			}{team, content.InsurancePartnerName, partners}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Println("Leadership Team")
		for _, m := range team {
			fmt.Printf("  %s - %s\n", m.Name, m.Title)
		}

		fmt.Printf("\nInsurance Partner\n  %s (%s)\n", content.InsurancePartnerName, content.InsurancePartnerURL)

		fmt.Printf("\nHospital Partners (%d)\n", len(partners))
		for _, p := range partners {
			fmt.Printf("  %-22s %s\n", p.Name, p.Description)
		}
		return nil
	},
}

func init() {
	directoryCmd.Flags().BoolVar(&flagDirectoryJSON, "json", false, "emit the directory as JSON")
}
