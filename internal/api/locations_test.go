package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoomAvailability(t *testing.T) {
	t.Run("passes the slot as query parameters", func(t *testing.T) {
		assert := require.New(t)

		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal("/api/rooms/floor/3/availability", r.URL.Path)
			assert.Equal("2026-09-03", r.URL.Query().Get("date"))
			assert.Equal("08:00:00", r.URL.Query().Get("startTime"))
			assert.Equal("12:00:00", r.URL.Query().Get("endTime"))
			w.Write([]byte(`[{"id":5,"name":"Blue Room","roomType":"CONFERENCE_ROOM","seatCount":8,"isAvailable":true}]`))
		}))

		rooms, err := client.Locations.RoomAvailability(t.Context(), 3, "2026-09-03", "08:00:00", "12:00:00")
		assert.NoError(err)
		assert.Len(rooms, 1)
		assert.True(rooms[0].IsAvailable)
	})

	t.Run("falls back to the plain room list", func(t *testing.T) {
		assert := require.New(t)

		mux := http.NewServeMux()
		mux.HandleFunc("/api/rooms/floor/3/availability", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		mux.HandleFunc("/api/rooms/floor/3", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":5,"name":"Blue Room","roomType":"CONFERENCE_ROOM","seatCount":8}]`))
		})

		client, _ := newTestClient(t, mux)

		rooms, err := client.Locations.RoomAvailability(t.Context(), 3, "2026-09-03", "08:00:00", "12:00:00")
		assert.NoError(err)
		assert.Len(rooms, 1)
		assert.False(rooms[0].IsAvailable)
	})
}

func TestAvailableSeats(t *testing.T) {
	assert := require.New(t)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/api/seats/available", r.URL.Path)
		q := r.URL.Query()
		assert.Equal("1", q.Get("buildingId"))
		assert.Equal("3", q.Get("floorId"))
		assert.Equal("5", q.Get("roomId"))
		assert.Equal("2026-09-03", q.Get("date"))
		assert.Equal("09:00:00", q.Get("startTime"))
		assert.Equal("10:00:00", q.Get("endTime"))
		w.Write([]byte(`[
			{"id":41,"seatNumber":"S1","isAvailable":true},
			{"id":42,"seatNumber":"S2","isAvailable":false}
		]`))
	}))

	seats, err := client.Locations.AvailableSeats(t.Context(), SeatQuery{
		BuildingID: 1, FloorID: 3, RoomID: 5,
		Date: "2026-09-03", StartTime: "09:00:00", EndTime: "10:00:00",
	})
	assert.NoError(err)
	assert.Len(seats, 2)
	assert.True(seats[0].IsAvailable)
	assert.False(seats[1].IsAvailable)
}

func TestFloors(t *testing.T) {
	assert := require.New(t)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/api/floors/building/1", r.URL.Path)
		w.Write([]byte(`[{"id":3,"name":"Floor 2"}]`))
	}))

	floors, err := client.Locations.Floors(t.Context(), 1)
	assert.NoError(err)
	assert.Equal([]Floor{{ID: 3, Name: "Floor 2"}}, floors)
}
