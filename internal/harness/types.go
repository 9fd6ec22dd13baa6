package harness

import "github.com/krakozavr/Inventory/internal/stats"

// TraceEvent records one flow step and the view it produced.
type TraceEvent struct {
	Seq        int      `json:"seq"`
	Action     string   `json:"action"`
	Args       any      `json:"args,omitempty"`
	Rejected   string   `json:"rejected,omitempty"`
	Page       int      `json:"page"`
	TotalPages int      `json:"total_pages"`
	Filtered   int      `json:"filtered"`
	SKUs       []string `json:"skus"`
	Selected   string   `json:"selected,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if all expect clauses and assertions match.
	Pass bool `json:"pass"`

	// Trace contains one event per flow step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Stats are the counters after the last step.
	Stats stats.Stats `json:"stats"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends an event, numbering it from 1.
func (r *Result) AddTrace(event TraceEvent) {
	event.Seq = len(r.Trace) + 1
	r.Trace = append(r.Trace, event)
}
