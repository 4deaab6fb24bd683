package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jinzhu/copier"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/view"
)

// reservationDTO is the backend's reservation record. Location fields are
// null for the variant they don't apply to.
type reservationDTO struct {
	ID              int64  `json:"id"`
	SeatNumber      string `json:"seatNumber"`
	RoomName        string `json:"roomName"`
	FloorName       string `json:"floorName"`
	BuildingName    string `json:"buildingName"`
	ReservationDate string `json:"reservationDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Status          string `json:"status"`
}

// SeatRequest books one or more seats for a slot.
type SeatRequest struct {
	UserID          int64   `json:"userId"`
	SeatIDs         []int64 `json:"seatId"`
	ReservationDate string  `json:"reservationDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
}

// RoomRequest books a single room for a slot. The wire field is named
// roomIds but carries one id; that is the backend's contract.
type RoomRequest struct {
	UserID          int64  `json:"userId"`
	RoomID          int64  `json:"roomIds"`
	ReservationDate string `json:"reservationDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
}

type updateRequest struct {
	ReservationDate string `json:"reservationDate"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
}

// ReservationGateway performs reservation CRUD against the backend and maps
// records into display projections.
type ReservationGateway struct {
	client *Client
}

// ListForUser fetches the user's reservations as view projections, in the
// backend's order. Callers apply view.Sort for listing.
func (g *ReservationGateway) ListForUser(ctx context.Context, userID int64) ([]view.Reservation, error) {
	var dtos []reservationDTO
	path := fmt.Sprintf("/api/reservations/user/%d", userID)
	if err := g.client.get(ctx, path, nil, &dtos); err != nil {
		return nil, err
	}

	reservations := make([]view.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		reservations = append(reservations, toView(dto))
	}
	return reservations, nil
}

// CreateSeat books the requested seats, returning the created record.
// A conflicting slot is marked with ErrSlotTaken.
func (g *ReservationGateway) CreateSeat(ctx context.Context, req SeatRequest) (*view.Reservation, error) {
	return g.create(ctx, "/api/reservations/seat", req)
}

// CreateRoom books the requested room, returning the created record.
// A conflicting slot is marked with ErrSlotTaken.
func (g *ReservationGateway) CreateRoom(ctx context.Context, req RoomRequest) (*view.Reservation, error) {
	return g.create(ctx, "/api/reservations/room", req)
}

func (g *ReservationGateway) create(ctx context.Context, path string, req any) (*view.Reservation, error) {
	var dto reservationDTO
	if err := g.client.send(ctx, http.MethodPost, path, req, &dto); err != nil {
		if isSlotConflict(err) {
			return nil, errors.Mark(err, ErrSlotTaken)
		}
		return nil, err
	}
	created := toView(dto)
	return &created, nil
}

// Update modifies a reservation's date and time range.
func (g *ReservationGateway) Update(ctx context.Context, id int64, date, startTime, endTime string) (*view.Reservation, error) {
	req := updateRequest{
		ReservationDate: date,
		StartTime:       startTime,
		EndTime:         endTime,
	}

	var dto reservationDTO
	path := fmt.Sprintf("/api/reservations/%d", id)
	if err := g.client.send(ctx, http.MethodPut, path, req, &dto); err != nil {
		return nil, err
	}
	updated := toView(dto)
	return &updated, nil
}

// Cancel deletes a reservation. Cancelling an already-cancelled reservation
// is the backend's concern; no client-side check is made.
func (g *ReservationGateway) Cancel(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/reservations/%d", id)
	return g.client.send(ctx, http.MethodDelete, path, nil, nil)
}

func toView(dto reservationDTO) view.Reservation {
	var res view.Reservation
	// Same-named fields copy across; the derived ones are built below.
	_ = copier.Copy(&res, &dto)

	res.RawDate = dto.ReservationDate
	if date, err := time.Parse("2006-01-02", dto.ReservationDate); err == nil {
		res.Date = date
	}
	res.TimeRange = view.FormatTimeRange(dto.StartTime, dto.EndTime)
	res.Details = view.JoinDetails(dto.SeatNumber, dto.RoomName, dto.FloorName, dto.BuildingName)

	return res
}

func isSlotConflict(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusConflict
}
