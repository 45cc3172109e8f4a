// internal/content/partners.go
package content

import "fmt"

// InsurancePartnerName is the underwriter of every BrightLife policy.
const InsurancePartnerName = "Protective Islami Life Ins. Ltd."

// InsurancePartnerURL points at the underwriter's public site.
const InsurancePartnerURL = "https://www.protectivelife.com.bd/"

// Partner is one hospital in the cashless treatment network.
type Partner struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

const hospitalPartnerCount = 25

// Descriptions rotate across the network; individual hospital blurbs are not
// curated yet.
var partnerDescriptionPool = []string{
	"24/7 emergency-ready care for BrightLife members.",
	"Modern diagnostics and experienced medical teams.",
	"Priority admission support through our concierge desk.",
	"Nationwide network access with cashless facilities.",
}

// HospitalPartners returns the partner network in display order. Names are
// zero-padded ordinals until the individual hospital profiles land.
func HospitalPartners() []Partner {
	out := make([]Partner, hospitalPartnerCount)
	for i := range out {
		out[i] = Partner{
			Name:        fmt.Sprintf("Hospital Partner %02d", i+1),
			Description: partnerDescriptionPool[i%len(partnerDescriptionPool)],
		}
	}
	return out
}
