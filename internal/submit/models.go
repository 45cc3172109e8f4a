// internal/submit/models.go
package submit

import "time"

// DefaultEndpoint is the agent-application resource on the backend.
const DefaultEndpoint = "/v1/agents/applications/"

// DefaultMockDelay is the simulated backend latency in mock mode.
const DefaultMockDelay = 1500 * time.Millisecond

// Config selects between the real backend and the simulated one.
type Config struct {
	BaseURL   string
	Endpoint  string
	Mock      bool
	MockDelay time.Duration
	Timeout   time.Duration
}

// serverError is the optional JSON body of a non-success response.
type serverError struct {
	Message string `json:"message"`
}

// Phase is the observable state of the form flow.
type Phase string

const (
	PhaseEditing    Phase = "editing"
	PhaseSubmitting Phase = "submitting"
	PhaseSuccess    Phase = "success"
)
