package service

import (
	"strings"

	"parkledger/internal/apierrors"
	"parkledger/internal/db"
	"parkledger/internal/entities"
	"parkledger/internal/repository"
)

type HistoryService struct {
	Repo *repository.LedgerRepository
}

func NewHistoryService(repo *repository.LedgerRepository) *HistoryService {
	return &HistoryService{Repo: repo}
}

// Search filters the transaction history and aggregates the matches. Fees are
// integers throughout; formatting belongs to whoever renders the result.
func (s *HistoryService) Search(q entities.HistoryQuery) (*entities.HistoryResult, error) {
	var kind db.VehicleKind
	if q.Kind != "" {
		parsed, err := db.ParseVehicleKind(q.Kind)
		if err != nil {
			return nil, apierrors.Validation("vehicle kind must be Car or Motorcycle")
		}
		kind = parsed
	}

	switch q.Membership {
	case "", entities.MembershipAny, entities.MembershipMember, entities.MembershipRegular:
	default:
		return nil, apierrors.Validation("membership filter must be member, regular or any")
	}

	needle := strings.ToLower(q.Query)

	result := &entities.HistoryResult{Transactions: []db.Transaction{}}
	for _, tx := range s.Repo.Load().Transactions {
		if needle != "" &&
			!strings.Contains(strings.ToLower(tx.Receipt), needle) &&
			!strings.Contains(strings.ToLower(tx.Plate), needle) {
			continue
		}
		if kind != "" && tx.Kind != kind {
			continue
		}
		if q.Membership == entities.MembershipMember && !tx.IsMember {
			continue
		}
		if q.Membership == entities.MembershipRegular && tx.IsMember {
			continue
		}

		result.Transactions = append(result.Transactions, tx)
		result.Count++
		result.TotalFees += tx.Fee
	}
	return result, nil
}

// Dashboard computes the front desk overview from the current document.
func (s *HistoryService) Dashboard() entities.DashboardStats {
	ledger := s.Repo.Load()

	var stats entities.DashboardStats
	for _, t := range ledger.ActiveTickets {
		switch t.Kind {
		case db.KindCar:
			stats.ActiveCars++
		case db.KindMotorcycle:
			stats.ActiveMotorcycles++
		}
	}
	stats.ActiveTotal = len(ledger.ActiveTickets)
	stats.Members = len(ledger.Members)
	stats.Transactions = len(ledger.Transactions)
	for _, tx := range ledger.Transactions {
		stats.TotalRevenue += tx.Fee
	}
	return stats
}
