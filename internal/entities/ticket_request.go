package entities

// CheckInRequest carries the fields the gate form collects for a vehicle
// entering the lot.
type CheckInRequest struct {
	Plate       string `json:"plate"`
	VehicleKind string `json:"vehicle_kind"`
	EntryDate   string `json:"entry_date"`
	EntryHour   int    `json:"entry_hour"`
	EntryMinute int    `json:"entry_minute"`
	MemberPhone string `json:"member_phone,omitempty"`
}

// CheckoutRequest is shared by the quote and confirm steps. QuotedFee and
// QuotedHours are only read at confirm time, carried over from the quote the
// operator approved.
type CheckoutRequest struct {
	ExitDate    string `json:"exit_date"`
	ExitHour    int    `json:"exit_hour"`
	ExitMinute  int    `json:"exit_minute"`
	QuotedFee   int    `json:"quoted_fee"`
	QuotedHours int    `json:"quoted_hours"`
}
