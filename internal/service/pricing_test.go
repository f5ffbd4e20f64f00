package service

import (
	"testing"
	"time"

	"parkledger/internal/config"
	"parkledger/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() config.Rates {
	return config.Rates{
		CarHourly:        5000,
		MotorcycleHourly: 3000,
		MemberDaily:      5000,
	}
}

func ticketAt(kind db.VehicleKind, date string, hour, minute, rate int, member bool) *db.Ticket {
	return &db.Ticket{
		Receipt:     BuildReceipt(kind, hour, minute, "B1234XY"),
		Plate:       "B1234XY",
		Kind:        kind,
		EntryDate:   date,
		EntryHour:   hour,
		EntryMinute: minute,
		HourlyRate:  rate,
		IsMember:    member,
	}
}

func exitAt(t *testing.T, date string, hour, minute int) time.Time {
	t.Helper()
	day, err := time.Parse(db.DateLayout, date)
	require.NoError(t, err)
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func TestComputeFeeCarPartialHourRoundsUp(t *testing.T) {
	ticket := ticketAt(db.KindCar, "2024-05-10", 10, 0, 5000, false)

	q, err := ComputeFee(ticket, exitAt(t, "2024-05-10", 12, 30), testRates())
	require.NoError(t, err)

	assert.Equal(t, 3, q.BillableHours)
	assert.Equal(t, 15000, q.Fee)
}

func TestComputeFeeMotorcycleAcrossMidnight(t *testing.T) {
	ticket := ticketAt(db.KindMotorcycle, "2024-05-10", 23, 0, 3000, false)

	q, err := ComputeFee(ticket, exitAt(t, "2024-05-11", 1, 0), testRates())
	require.NoError(t, err)

	assert.Equal(t, 120, q.ElapsedMinutes)
	assert.Equal(t, 2, q.BillableHours)
	assert.Equal(t, 6000, q.Fee)
}

func TestComputeFeeShortStayBillsMinimumOneHour(t *testing.T) {
	ticket := ticketAt(db.KindMotorcycle, "2024-05-10", 23, 50, 3000, false)

	q, err := ComputeFee(ticket, exitAt(t, "2024-05-11", 0, 10), testRates())
	require.NoError(t, err)

	assert.Equal(t, 20, q.ElapsedMinutes, "span over midnight must be positive")
	assert.Equal(t, 1, q.BillableHours)
	assert.Equal(t, 3000, q.Fee)
}

func TestComputeFeeMemberDayBlocks(t *testing.T) {
	tests := []struct {
		name     string
		exitDate string
		exitHour int
		wantDays int
		wantFee  int
	}{
		{"23 hours is one day block", "2024-05-11", 9, 1, 5000},
		{"exactly 24 hours is one day block", "2024-05-11", 10, 1, 5000},
		{"48 hours is two day blocks", "2024-05-12", 10, 2, 10000},
		{"49 hours starts a third block", "2024-05-12", 11, 3, 15000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := ticketAt(db.KindCar, "2024-05-10", 10, 0, 5000, true)

			q, err := ComputeFee(ticket, exitAt(t, tt.exitDate, tt.exitHour, 0), testRates())
			require.NoError(t, err)

			assert.Equal(t, tt.wantDays, q.BillableDays)
			assert.Equal(t, tt.wantFee, q.Fee)
		})
	}
}

func TestComputeFeeMemberRateIgnoresVehicleKind(t *testing.T) {
	car := ticketAt(db.KindCar, "2024-05-10", 8, 0, 5000, true)
	moto := ticketAt(db.KindMotorcycle, "2024-05-10", 8, 0, 3000, true)
	exit := exitAt(t, "2024-05-10", 20, 0)

	qCar, err := ComputeFee(car, exit, testRates())
	require.NoError(t, err)
	qMoto, err := ComputeFee(moto, exit, testRates())
	require.NoError(t, err)

	assert.Equal(t, qCar.Fee, qMoto.Fee)
	assert.Equal(t, 5000, qCar.Fee)
}

func TestComputeFeeRejectsExitNotAfterEntry(t *testing.T) {
	ticket := ticketAt(db.KindCar, "2024-05-10", 10, 0, 5000, false)

	_, err := ComputeFee(ticket, exitAt(t, "2024-05-10", 10, 0), testRates())
	assert.Error(t, err, "exit equal to entry is invalid")

	_, err = ComputeFee(ticket, exitAt(t, "2024-05-10", 9, 30), testRates())
	assert.Error(t, err, "exit before entry is invalid")
}

func TestComputeFeeIsPure(t *testing.T) {
	ticket := ticketAt(db.KindCar, "2024-05-10", 10, 0, 5000, false)
	before := *ticket
	exit := exitAt(t, "2024-05-10", 14, 15)

	first, err := ComputeFee(ticket, exit, testRates())
	require.NoError(t, err)
	second, err := ComputeFee(ticket, exit, testRates())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, *ticket, "pricing must not mutate the ticket")
}

func TestHourlyRateFor(t *testing.T) {
	rates := testRates()

	carRate, err := HourlyRateFor(db.KindCar, rates)
	require.NoError(t, err)
	assert.Equal(t, 5000, carRate)

	motoRate, err := HourlyRateFor(db.KindMotorcycle, rates)
	require.NoError(t, err)
	assert.Equal(t, 3000, motoRate)

	_, err = HourlyRateFor(db.VehicleKind("Truck"), rates)
	assert.Error(t, err)
}
