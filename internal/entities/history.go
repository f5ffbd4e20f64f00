package entities

import "parkledger/internal/db"

// Membership filter values for history queries.
const (
	MembershipAny     = "any"
	MembershipMember  = "member"
	MembershipRegular = "regular"
)

// HistoryQuery filters the transaction list. Query matches receipt or plate
// as a case-insensitive substring; Kind matches exactly; Membership is one of
// the Membership* constants, with an empty string meaning any.
type HistoryQuery struct {
	Query      string
	Kind       string
	Membership string
}

type HistoryResult struct {
	Count        int              `json:"count"`
	TotalFees    int              `json:"total_fees"`
	Transactions []db.Transaction `json:"transactions"`
}

// DashboardStats mirrors the front desk overview: occupancy split by kind,
// roster size, and lifetime revenue.
type DashboardStats struct {
	ActiveCars        int `json:"active_cars"`
	ActiveMotorcycles int `json:"active_motorcycles"`
	ActiveTotal       int `json:"active_total"`
	Members           int `json:"members"`
	Transactions      int `json:"transactions"`
	TotalRevenue      int `json:"total_revenue"`
}
