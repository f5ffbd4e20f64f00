package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"parkledger/internal/apierrors"
	"parkledger/internal/config"
	"parkledger/internal/db"
	"parkledger/internal/entities"
	"parkledger/internal/repository"
	"parkledger/internal/utils"
)

const receiptPrefix = "P-"

type TicketService struct {
	Repo  *repository.LedgerRepository
	rates config.Rates
}

func NewTicketService(repo *repository.LedgerRepository, rates config.Rates) *TicketService {
	return &TicketService{Repo: repo, rates: rates}
}

// BuildReceipt derives the receipt number from the vehicle kind, entry clock
// and plate. Deterministic: the same inputs always produce the same receipt.
func BuildReceipt(kind db.VehicleKind, hour, minute int, plate string) string {
	return fmt.Sprintf("%s%s%02d.%02d-%s", receiptPrefix, kind.Code(), hour, minute, plate)
}

// CheckIn validates the gate form, issues a ticket and persists the ledger.
// An unrecognized member phone rejects the check-in rather than silently
// falling back to standard pricing.
func (s *TicketService) CheckIn(req entities.CheckInRequest) (*db.Ticket, error) {
	plate := utils.NormalizePlate(req.Plate)
	if len(plate) < 3 || len(plate) > 15 {
		return nil, apierrors.Validation("plate number must be 3 to 15 characters")
	}

	kind, err := db.ParseVehicleKind(req.VehicleKind)
	if err != nil {
		return nil, apierrors.Validation("vehicle kind must be Car or Motorcycle")
	}

	if _, err := parseClock(req.EntryDate, req.EntryHour, req.EntryMinute); err != nil {
		return nil, err
	}

	rate, err := HourlyRateFor(kind, s.rates)
	if err != nil {
		return nil, apierrors.Validation(err.Error())
	}

	ticket := db.Ticket{
		Receipt:     BuildReceipt(kind, req.EntryHour, req.EntryMinute, plate),
		Plate:       plate,
		Kind:        kind,
		EntryDate:   req.EntryDate,
		EntryHour:   req.EntryHour,
		EntryMinute: req.EntryMinute,
		HourlyRate:  rate,
	}

	err = s.Repo.Update(func(ledger *db.Ledger) error {
		if ledger.FindTicketByPlate(plate) != nil {
			return apierrors.Conflict(fmt.Sprintf("vehicle %s already has an active ticket", plate))
		}
		if ledger.FindTicket(ticket.Receipt) != nil {
			return apierrors.Conflict(fmt.Sprintf("receipt %s is already in use", ticket.Receipt))
		}

		if req.MemberPhone != "" {
			if !utils.ValidPhone(req.MemberPhone) {
				return apierrors.Validation("member phone must be 10 to 13 digits")
			}
			member := ledger.FindMember(req.MemberPhone)
			if member == nil {
				return apierrors.NotFound(fmt.Sprintf("no member registered with phone %s", req.MemberPhone))
			}
			member.VisitCount++
			ticket.IsMember = true
			ticket.MemberPhone = req.MemberPhone
		}

		ledger.ActiveTickets = append(ledger.ActiveTickets, ticket)
		return nil
	})
	if err != nil {
		return nil, asOperationError(err, "check-in")
	}

	log.Printf("Checked in %s (%s), receipt %s", plate, kind, ticket.Receipt)
	return &ticket, nil
}

// Quote prices a checkout without mutating anything. The operator confirms
// the returned fee before Confirm records it.
func (s *TicketService) Quote(receipt string, req entities.CheckoutRequest) (*entities.QuoteResponse, error) {
	ledger := s.Repo.Load()
	ticket := ledger.FindTicket(receipt)
	if ticket == nil {
		return nil, apierrors.NotFound(fmt.Sprintf("no active ticket with receipt %s", receipt))
	}

	exitTime, err := parseClock(req.ExitDate, req.ExitHour, req.ExitMinute)
	if err != nil {
		return nil, err
	}

	quote, err := ComputeFee(ticket, exitTime, s.rates)
	if err != nil {
		return nil, apierrors.Validation(err.Error())
	}

	return &entities.QuoteResponse{
		Receipt:       ticket.Receipt,
		Plate:         ticket.Plate,
		IsMember:      ticket.IsMember,
		Fee:           quote.Fee,
		DurationHours: quote.BillableHours,
		BillableDays:  quote.BillableDays,
	}, nil
}

// Confirm finishes a checkout: the fee is recomputed from the stored ticket
// and the submitted exit time, and must match what the quote step showed the
// operator. On success the ticket leaves the active set and exactly one
// transaction is appended. The transition is one-way.
func (s *TicketService) Confirm(receipt string, req entities.CheckoutRequest) (*db.Transaction, error) {
	exitTime, err := parseClock(req.ExitDate, req.ExitHour, req.ExitMinute)
	if err != nil {
		return nil, err
	}

	var tx db.Transaction
	err = s.Repo.Update(func(ledger *db.Ledger) error {
		ticket := ledger.FindTicket(receipt)
		if ticket == nil {
			return apierrors.NotFound(fmt.Sprintf("no active ticket with receipt %s", receipt))
		}

		quote, err := ComputeFee(ticket, exitTime, s.rates)
		if err != nil {
			return apierrors.Validation(err.Error())
		}
		if quote.Fee != req.QuotedFee || quote.BillableHours != req.QuotedHours {
			return apierrors.Conflict("fee no longer matches the quote, request a new quote")
		}

		entryTime, err := ticket.EntryTime()
		if err != nil {
			return apierrors.Validation(err.Error())
		}

		tx = db.Transaction{
			Receipt:       ticket.Receipt,
			Plate:         ticket.Plate,
			Kind:          ticket.Kind,
			EntryTime:     entryTime,
			ExitTime:      exitTime,
			DurationHours: quote.BillableHours,
			Fee:           quote.Fee,
			IsMember:      ticket.IsMember,
			MemberPhone:   ticket.MemberPhone,
			CreatedAt:     time.Now().UTC(),
		}
		ledger.Transactions = append(ledger.Transactions, tx)
		ledger.RemoveTicket(receipt)
		return nil
	})
	if err != nil {
		return nil, asOperationError(err, "checkout")
	}

	log.Printf("Checked out %s, receipt %s, fee %d", tx.Plate, tx.Receipt, tx.Fee)

	if tx.IsMember && tx.MemberPhone != "" {
		go func(t db.Transaction) {
			if err := SendCheckoutSMS(t); err != nil {
				log.Printf("WARNING: checkout %s recorded but receipt SMS to %s failed: %v", t.Receipt, t.MemberPhone, err)
			}
		}(tx)
	}

	return &tx, nil
}

// ListActive returns a copy of the active ticket list.
func (s *TicketService) ListActive() []db.Ticket {
	return s.Repo.Load().ActiveTickets
}

func (s *TicketService) Get(receipt string) (*db.Ticket, error) {
	ticket := s.Repo.Load().FindTicket(receipt)
	if ticket == nil {
		return nil, apierrors.NotFound(fmt.Sprintf("no active ticket with receipt %s", receipt))
	}
	return ticket, nil
}

// parseClock validates a date plus hour/minute form triple and composes the
// full timestamp.
func parseClock(date string, hour, minute int) (time.Time, error) {
	if date == "" {
		return time.Time{}, apierrors.Validation("date is required")
	}
	day, err := time.Parse(db.DateLayout, date)
	if err != nil {
		return time.Time{}, apierrors.Validation(fmt.Sprintf("date %q must be in YYYY-MM-DD format", date))
	}
	if hour < 0 || hour > 23 {
		return time.Time{}, apierrors.Validation("hour must be between 0 and 23")
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, apierrors.Validation("minute must be between 0 and 59")
	}
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}

// asOperationError passes validation errors through and turns anything else
// (storage failures) into a generic infrastructure error, logging the cause.
// The caller must treat the mutation as not committed.
func asOperationError(err error, op string) error {
	var httpErr *apierrors.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	log.Printf("ERROR: persisting %s: %v", op, err)
	return apierrors.Internal(fmt.Sprintf("could not save parking data, the %s was not recorded", op))
}
