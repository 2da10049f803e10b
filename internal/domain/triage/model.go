package triage

// Urgency buckets a symptom description into a recommended response time.
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyRoutine   Urgency = "routine"
)

// Result is the outcome of screening a symptom description.
type Result struct {
	Urgency Urgency `json:"urgency"`
	// Specialty is the recommended specialty to book with, empty when the
	// classifier could not suggest one.
	Specialty string `json:"specialty,omitempty"`
	Advice    string `json:"advice"`
	// Source records which classifier produced the result: "remote" or
	// "keyword".
	Source string `json:"source"`
}
