// Package view holds display-ready projections of backend records.
package view

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Reservation statuses the client needs to recognize. The full set is owned
// by the backend; anything unrecognized is rendered as-is.
const (
	StatusConfirmed = "CONFIRMED"
	StatusPending   = "PENDING"
	StatusCancelled = "CANCELLED"
)

// Reservation is the display projection of a seat or room reservation.
type Reservation struct {
	ID           int64
	SeatNumber   string
	RoomName     string
	FloorName    string
	BuildingName string
	Status       string

	Date      time.Time
	RawDate   string // YYYY-MM-DD as sent by the backend
	StartTime string // HH:MM:SS
	EndTime   string // HH:MM:SS

	TimeRange string // "HH:MM - HH:MM"
	Details   string // joined location string
}

// IsSeat reports whether this is a seat reservation (as opposed to a room).
func (r Reservation) IsSeat() bool {
	return r.SeatNumber != ""
}

// Number cycles the backend id into a 1-1000 display number.
func (r Reservation) Number() int64 {
	if r.ID == 0 {
		return 1
	}
	return ((r.ID - 1) % 1000) + 1
}

// DisplayName labels the reservation for lists and confirmations.
func (r Reservation) DisplayName() string {
	if r.IsSeat() {
		return fmt.Sprintf("Seat Reservation #%d", r.Number())
	}
	return fmt.Sprintf("Room Reservation #%d", r.Number())
}

// JoinDetails builds the location string shown in reservation lists.
// Seat reservations include the building and floor when known.
func JoinDetails(seatNumber, roomName, floorName, buildingName string) string {
	if seatNumber != "" {
		if buildingName != "" && floorName != "" {
			return fmt.Sprintf("%s, %s - Seat %s", buildingName, floorName, seatNumber)
		}
		return "Seat " + seatNumber
	}
	return roomName
}

// FormatTimeRange renders "HH:MM - HH:MM" from HH:MM:SS backend times.
func FormatTimeRange(start, end string) string {
	if start != "" && end != "" {
		return shortTime(start) + " - " + shortTime(end)
	}
	return shortTime(start)
}

func shortTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// Sort orders reservations for listing: cancelled entries after all others,
// non-cancelled ascending by date. The sort is stable; the relative order of
// cancelled entries is preserved but not meaningful.
func Sort(reservations []Reservation) {
	slices.SortStableFunc(reservations, func(a, b Reservation) int {
		aCancelled := strings.EqualFold(a.Status, StatusCancelled)
		bCancelled := strings.EqualFold(b.Status, StatusCancelled)
		switch {
		case aCancelled && bCancelled:
			return 0
		case aCancelled:
			return 1
		case bCancelled:
			return -1
		}
		return a.Date.Compare(b.Date)
	})
}
