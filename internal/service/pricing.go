package service

import (
	"fmt"
	"time"

	"parkledger/internal/config"
	"parkledger/internal/db"
)

const minutesPerDay = 24 * 60

// Quote is the result of pricing a ticket against an exit time.
type Quote struct {
	Fee            int
	BillableHours  int
	BillableDays   int
	ElapsedMinutes int
}

// HourlyRateFor resolves the entry-time rate snapshot for a vehicle kind.
func HourlyRateFor(kind db.VehicleKind, rates config.Rates) (int, error) {
	switch kind {
	case db.KindCar:
		return rates.CarHourly, nil
	case db.KindMotorcycle:
		return rates.MotorcycleHourly, nil
	}
	return 0, fmt.Errorf("no hourly rate for vehicle kind %q", kind)
}

// ComputeFee prices a ticket for the given exit time. It is pure: it reads
// the ticket and the rates and mutates nothing.
//
// Elapsed time is anchored to full calendar timestamps so stays spanning
// midnight or multiple days come out positive. Billable hours round up with a
// minimum of one. Members pay a flat day rate per started 24-hour block
// regardless of vehicle kind; everyone else pays billable hours times the
// hourly rate snapshotted at entry.
func ComputeFee(ticket *db.Ticket, exitTime time.Time, rates config.Rates) (Quote, error) {
	entryTime, err := ticket.EntryTime()
	if err != nil {
		return Quote{}, err
	}

	minutes := int(exitTime.Sub(entryTime).Minutes())
	if minutes <= 0 {
		return Quote{}, fmt.Errorf("exit time must be after entry time")
	}

	hours := minutes / 60
	if minutes%60 > 0 {
		hours++
	}
	if hours < 1 {
		hours = 1
	}

	q := Quote{
		BillableHours:  hours,
		ElapsedMinutes: minutes,
	}

	if ticket.IsMember {
		days := minutes / minutesPerDay
		if minutes%minutesPerDay > 0 {
			days++
		}
		q.BillableDays = days
		q.Fee = days * rates.MemberDaily
		return q, nil
	}

	if ticket.HourlyRate <= 0 {
		return Quote{}, fmt.Errorf("ticket %s has no hourly rate snapshot", ticket.Receipt)
	}
	q.Fee = hours * ticket.HourlyRate
	return q, nil
}
