package db

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type VehicleKind string

const (
	KindCar        VehicleKind = "Car"
	KindMotorcycle VehicleKind = "Motorcycle"
)

// ParseVehicleKind accepts the form values the gate terminal sends.
func ParseVehicleKind(s string) (VehicleKind, error) {
	switch s {
	case "Car", "car", "1":
		return KindCar, nil
	case "Motorcycle", "motorcycle", "2":
		return KindMotorcycle, nil
	}
	return "", fmt.Errorf("unknown vehicle kind %q", s)
}

// Code returns the two-letter kind code used in receipt numbers.
func (k VehicleKind) Code() string {
	switch k {
	case KindCar:
		return "CR"
	case KindMotorcycle:
		return "MC"
	}
	return "??"
}

// Ticket is an active parking session. Entry time is kept as the discrete
// date/hour/minute fields the gate form collects; EntryTime composes them.
type Ticket struct {
	Receipt     string      `json:"receipt"`
	Plate       string      `json:"plate"`
	Kind        VehicleKind `json:"kind"`
	EntryDate   string      `json:"entry_date"`
	EntryHour   int         `json:"entry_hour"`
	EntryMinute int         `json:"entry_minute"`
	HourlyRate  int         `json:"hourly_rate"`
	IsMember    bool        `json:"is_member"`
	MemberPhone string      `json:"member_phone,omitempty"`
}

func (t *Ticket) EntryTime() (time.Time, error) {
	day, err := time.Parse(DateLayout, t.EntryDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid entry date %q: %w", t.EntryDate, err)
	}
	return day.Add(time.Duration(t.EntryHour)*time.Hour + time.Duration(t.EntryMinute)*time.Minute), nil
}

type Member struct {
	Phone        string    `json:"phone"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
	VisitCount   int       `json:"visit_count"`
}

// Transaction is the immutable record appended at checkout confirmation.
type Transaction struct {
	Receipt       string      `json:"receipt"`
	Plate         string      `json:"plate"`
	Kind          VehicleKind `json:"kind"`
	EntryTime     time.Time   `json:"entry_time"`
	ExitTime      time.Time   `json:"exit_time"`
	DurationHours int         `json:"duration_hours"`
	Fee           int         `json:"fee"`
	IsMember      bool        `json:"is_member"`
	MemberPhone   string      `json:"member_phone,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Ledger is the whole persisted document: the sole unit of persistence.
// Collections stay as lists so the in-memory shape is exactly the wire shape.
type Ledger struct {
	ActiveTickets []Ticket      `json:"active_tickets"`
	Members       []Member      `json:"members"`
	Transactions  []Transaction `json:"transactions"`
}

func NewLedger() *Ledger {
	return &Ledger{
		ActiveTickets: []Ticket{},
		Members:       []Member{},
		Transactions:  []Transaction{},
	}
}

// FindTicket returns a pointer into ActiveTickets, or nil.
func (l *Ledger) FindTicket(receipt string) *Ticket {
	for i := range l.ActiveTickets {
		if l.ActiveTickets[i].Receipt == receipt {
			return &l.ActiveTickets[i]
		}
	}
	return nil
}

// FindTicketByPlate returns the active ticket for a plate, or nil.
func (l *Ledger) FindTicketByPlate(plate string) *Ticket {
	for i := range l.ActiveTickets {
		if l.ActiveTickets[i].Plate == plate {
			return &l.ActiveTickets[i]
		}
	}
	return nil
}

// RemoveTicket removes the ticket with the given receipt number and reports
// whether it was present.
func (l *Ledger) RemoveTicket(receipt string) bool {
	for i := range l.ActiveTickets {
		if l.ActiveTickets[i].Receipt == receipt {
			l.ActiveTickets = append(l.ActiveTickets[:i], l.ActiveTickets[i+1:]...)
			return true
		}
	}
	return false
}

// FindMember returns a pointer into Members, or nil.
func (l *Ledger) FindMember(phone string) *Member {
	for i := range l.Members {
		if l.Members[i].Phone == phone {
			return &l.Members[i]
		}
	}
	return nil
}

// RemoveMember removes the member with the given phone and reports whether it
// was present.
func (l *Ledger) RemoveMember(phone string) bool {
	for i := range l.Members {
		if l.Members[i].Phone == phone {
			l.Members = append(l.Members[:i], l.Members[i+1:]...)
			return true
		}
	}
	return false
}
