package entities

// QuoteResponse is what the operator sees before confirming a checkout.
// Nothing is mutated until the confirm step.
type QuoteResponse struct {
	Receipt       string `json:"receipt"`
	Plate         string `json:"plate"`
	IsMember      bool   `json:"is_member"`
	Fee           int    `json:"fee"`
	DurationHours int    `json:"duration_hours"`
	BillableDays  int    `json:"billable_days,omitempty"`
}
