package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
)

// Building is one selectable office building.
type Building struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Floor is one floor of a building.
type Floor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RoomTypeConference marks rooms bookable through the room flow.
const RoomTypeConference = "CONFERENCE_ROOM"

// Room is one room of a floor. IsAvailable is only populated by the
// availability endpoint.
type Room struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	RoomType    string `json:"roomType"`
	SeatCount   int    `json:"seatCount"`
	IsAvailable bool   `json:"isAvailable"`
}

// Seat is one seat with its availability for a queried slot.
type Seat struct {
	ID          int64  `json:"id"`
	SeatNumber  string `json:"seatNumber"`
	IsAvailable bool   `json:"isAvailable"`
}

// SeatQuery identifies the room and slot to check seat availability for.
type SeatQuery struct {
	BuildingID int64
	FloorID    int64
	RoomID     int64
	Date       string // YYYY-MM-DD
	StartTime  string // HH:MM:SS
	EndTime    string // HH:MM:SS
}

// LocationsGateway reads the building → floor → room → seat hierarchy.
type LocationsGateway struct {
	client *Client
}

func (g *LocationsGateway) Buildings(ctx context.Context) ([]Building, error) {
	var buildings []Building
	if err := g.client.get(ctx, "/api/buildings", nil, &buildings); err != nil {
		return nil, err
	}
	return buildings, nil
}

func (g *LocationsGateway) Floors(ctx context.Context, buildingID int64) ([]Floor, error) {
	var floors []Floor
	path := fmt.Sprintf("/api/floors/building/%d", buildingID)
	if err := g.client.get(ctx, path, nil, &floors); err != nil {
		return nil, err
	}
	return floors, nil
}

func (g *LocationsGateway) Rooms(ctx context.Context, floorID int64) ([]Room, error) {
	var rooms []Room
	path := fmt.Sprintf("/api/rooms/floor/%d", floorID)
	if err := g.client.get(ctx, path, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// RoomAvailability lists a floor's rooms with availability for the given
// slot. When the availability endpoint fails it falls back to the plain room
// list, which carries no availability flags.
func (g *LocationsGateway) RoomAvailability(ctx context.Context, floorID int64, date, startTime, endTime string) ([]Room, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("startTime", startTime)
	query.Set("endTime", endTime)

	var rooms []Room
	path := fmt.Sprintf("/api/rooms/floor/%d/availability", floorID)
	if err := g.client.get(ctx, path, query, &rooms); err != nil {
		log.Debug().Err(err).Int64("floorID", floorID).
			Msg("availability endpoint failed, falling back to room list")
		return g.Rooms(ctx, floorID)
	}
	return rooms, nil
}

func (g *LocationsGateway) AvailableSeats(ctx context.Context, q SeatQuery) ([]Seat, error) {
	query := url.Values{}
	query.Set("buildingId", fmt.Sprintf("%d", q.BuildingID))
	query.Set("floorId", fmt.Sprintf("%d", q.FloorID))
	query.Set("roomId", fmt.Sprintf("%d", q.RoomID))
	query.Set("date", q.Date)
	query.Set("startTime", q.StartTime)
	query.Set("endTime", q.EndTime)

	var seats []Seat
	if err := g.client.get(ctx, "/api/seats/available", query, &seats); err != nil {
		return nil, err
	}
	return seats, nil
}
