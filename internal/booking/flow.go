// Package booking drives the cascading selection and validation shared by
// the seat and room booking flows.
package booking

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/api"
	"github.com/ITSSBackToSchool/echipa2-frontend/internal/view"
)

// Validation errors raised before any network call is made.
var (
	ErrNothingSelected = errors.New("select at least one seat or a room")
	ErrTimeOrder       = errors.New("start time must be earlier than end time")
	ErrPastTime        = errors.New("cannot book in the past")
)

// Variant selects which booking flow the controller runs.
type Variant int

const (
	VariantSeat Variant = iota
	VariantRoom
)

// Stage is the flow's position in the booking state machine.
type Stage int

const (
	StageSelectingLocation Stage = iota
	StageSelectingTime
	StageSelectingSeats
	StageSelectingRoom
	StageConfirming
	StageBooked
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageSelectingLocation:
		return "selecting-location"
	case StageSelectingTime:
		return "selecting-time"
	case StageSelectingSeats:
		return "selecting-seats"
	case StageSelectingRoom:
		return "selecting-room"
	case StageConfirming:
		return "confirming"
	case StageBooked:
		return "booked"
	case StageFailed:
		return "failed"
	}
	return "unknown"
}

// LocationService is the slice of the locations gateway the flow needs.
type LocationService interface {
	Buildings(ctx context.Context) ([]api.Building, error)
	Floors(ctx context.Context, buildingID int64) ([]api.Floor, error)
	Rooms(ctx context.Context, floorID int64) ([]api.Room, error)
	RoomAvailability(ctx context.Context, floorID int64, date, startTime, endTime string) ([]api.Room, error)
	AvailableSeats(ctx context.Context, q api.SeatQuery) ([]api.Seat, error)
}

// ReservationService is the slice of the reservation gateway the flow needs.
type ReservationService interface {
	CreateSeat(ctx context.Context, req api.SeatRequest) (*view.Reservation, error)
	CreateRoom(ctx context.Context, req api.RoomRequest) (*view.Reservation, error)
}

// Flow is the booking controller for one page visit. Selections cascade:
// changing a building resets floor, room and seats; changing a floor resets
// room and seats. Responses to superseded selections are discarded.
//
// Flow is not safe for concurrent use; like the page it models, it belongs
// to a single user interaction.
type Flow struct {
	variant      Variant
	locations    LocationService
	reservations ReservationService
	userID       int64
	now          func() time.Time

	stage Stage
	gen   uint64

	buildings []api.Building
	floors    []api.Floor
	rooms     []api.Room
	seats     []api.Seat

	buildingID int64
	floorID    int64
	roomID     int64
	seatIDs    []int64

	date time.Time
	from string
	to   string

	lastErr string
	created *view.Reservation
}

// NewFlow creates a booking flow for the given user.
func NewFlow(variant Variant, locations LocationService, reservations ReservationService, userID int64) *Flow {
	f := &Flow{
		variant:      variant,
		locations:    locations,
		reservations: reservations,
		userID:       userID,
		now:          time.Now,
		stage:        StageSelectingLocation,
	}

	if variant == VariantRoom {
		f.from, f.to, _ = SlotTimes(SlotMorning)
	} else {
		f.from, f.to = "09:00", "10:00"
	}

	return f
}

// Init fetches the buildings and auto-selects the first one, cascading down
// to floors and rooms the way the pages do on load. Past the last bookable
// hour the date rolls to tomorrow.
func (f *Flow) Init(ctx context.Context) error {
	now := f.now()
	f.date = now
	if clockString(now) > lastBookable {
		f.date = now.AddDate(0, 0, 1)
	}

	buildings, err := f.locations.Buildings(ctx)
	if err != nil {
		f.stage = StageFailed
		f.lastErr = err.Error()
		return err
	}

	f.buildings = buildings
	if len(buildings) == 0 {
		return nil
	}
	return f.SelectBuilding(ctx, buildings[0].ID)
}

// SelectBuilding sets the building, clears every downstream selection, then
// fetches the building's floors and auto-selects the first.
func (f *Flow) SelectBuilding(ctx context.Context, buildingID int64) error {
	f.buildingID = buildingID
	f.floorID, f.roomID = 0, 0
	f.seatIDs = nil
	f.floors, f.rooms, f.seats = nil, nil, nil
	gen := f.bump()

	floors, err := f.locations.Floors(ctx, buildingID)
	if err != nil {
		return err
	}
	if f.stale(gen) {
		return nil
	}

	f.floors = floors
	if len(floors) == 0 {
		return nil
	}
	return f.SelectFloor(ctx, floors[0].ID)
}

// SelectFloor sets the floor, clears the room and seat selections, then
// fetches the floor's rooms (availability-filtered for the room flow).
func (f *Flow) SelectFloor(ctx context.Context, floorID int64) error {
	f.floorID = floorID
	f.roomID = 0
	f.seatIDs = nil
	f.rooms, f.seats = nil, nil
	gen := f.bump()

	rooms, err := f.fetchRooms(ctx)
	if err != nil {
		return err
	}
	if f.stale(gen) {
		return nil
	}

	f.rooms = rooms
	if f.stage == StageSelectingLocation {
		f.stage = StageSelectingTime
	}

	// The seat flow pre-selects the first room and loads its seats.
	if f.variant == VariantSeat && len(rooms) > 0 {
		return f.SelectRoom(ctx, rooms[0].ID)
	}
	return nil
}

// SelectRoom sets the room. In the seat flow this also fetches the room's
// seat availability; in the room flow it is the terminal selection.
func (f *Flow) SelectRoom(ctx context.Context, roomID int64) error {
	f.roomID = roomID

	if f.variant == VariantRoom {
		f.advanceToSelection()
		return nil
	}

	f.seatIDs = nil
	f.seats = nil
	gen := f.bump()

	seats, err := f.locations.AvailableSeats(ctx, api.SeatQuery{
		BuildingID: f.buildingID,
		FloorID:    f.floorID,
		RoomID:     roomID,
		Date:       FormatDate(f.date),
		StartTime:  WithSeconds(f.from),
		EndTime:    WithSeconds(f.to),
	})
	if err != nil {
		return err
	}
	if f.stale(gen) {
		return nil
	}

	f.seats = seats
	f.advanceToSelection()
	return nil
}

// ToggleSeat adds or removes a seat from the selection. Unavailable seats
// are ignored.
func (f *Flow) ToggleSeat(seatID int64) {
	for _, seat := range f.seats {
		if seat.ID == seatID && !seat.IsAvailable {
			return
		}
	}
	for i, id := range f.seatIDs {
		if id == seatID {
			f.seatIDs = append(f.seatIDs[:i], f.seatIDs[i+1:]...)
			return
		}
	}
	f.seatIDs = append(f.seatIDs, seatID)
}

// SetDate changes the reservation date and refreshes availability.
func (f *Flow) SetDate(ctx context.Context, date time.Time) error {
	f.date = date
	return f.refreshAvailability(ctx)
}

// SetTimes changes the free-form start/end pair and refreshes availability.
func (f *Flow) SetTimes(ctx context.Context, from, to string) error {
	f.from, f.to = from, to
	return f.refreshAvailability(ctx)
}

// SelectSlot applies a preset time range.
func (f *Flow) SelectSlot(ctx context.Context, slot Slot) error {
	from, to, ok := SlotTimes(slot)
	if !ok {
		return errors.Newf("unknown time slot %q", slot)
	}
	return f.SetTimes(ctx, from, to)
}

// Validate checks the local constraints without touching the network.
func (f *Flow) Validate() error {
	if f.variant == VariantSeat && len(f.seatIDs) == 0 {
		return ErrNothingSelected
	}
	if f.variant == VariantRoom && f.roomID == 0 {
		return ErrNothingSelected
	}
	if f.from >= f.to {
		return ErrTimeOrder
	}
	now := f.now()
	if sameDay(f.date, now) && f.from < clockString(now) {
		return ErrPastTime
	}
	return nil
}

// Confirm validates and submits the reservation. On success the flow is
// Booked and availability is refreshed; on failure the flow returns to the
// selection stage with the error message, keeping all selections so the user
// can retry a different slot.
func (f *Flow) Confirm(ctx context.Context) (*view.Reservation, error) {
	if err := f.Validate(); err != nil {
		f.lastErr = err.Error()
		return nil, err
	}

	f.stage = StageConfirming
	f.lastErr = ""

	created, err := f.submit(ctx)
	if err != nil {
		f.lastErr = err.Error()
		f.advanceToSelection()
		return nil, err
	}

	f.created = created
	f.stage = StageBooked

	log.Info().Int64("reservationID", created.ID).Str("date", created.RawDate).
		Msg("reservation booked")

	if err := f.refreshAvailability(ctx); err != nil {
		log.Debug().Err(err).Msg("availability refresh after booking failed")
	}
	return created, nil
}

func (f *Flow) submit(ctx context.Context) (*view.Reservation, error) {
	date := FormatDate(f.date)
	start, end := WithSeconds(f.from), WithSeconds(f.to)

	if f.variant == VariantSeat {
		return f.reservations.CreateSeat(ctx, api.SeatRequest{
			UserID:          f.userID,
			SeatIDs:         append([]int64(nil), f.seatIDs...),
			ReservationDate: date,
			StartTime:       start,
			EndTime:         end,
		})
	}
	return f.reservations.CreateRoom(ctx, api.RoomRequest{
		UserID:          f.userID,
		RoomID:          f.roomID,
		ReservationDate: date,
		StartTime:       start,
		EndTime:         end,
	})
}

// refreshAvailability reloads whatever the time change invalidates: seats in
// the seat flow, the room list in the room flow. The room selection is
// dropped because its availability is no longer known.
func (f *Flow) refreshAvailability(ctx context.Context) error {
	if f.floorID == 0 {
		return nil
	}

	if f.variant == VariantSeat {
		if f.roomID == 0 {
			return nil
		}
		return f.SelectRoom(ctx, f.roomID)
	}

	f.roomID = 0
	gen := f.bump()
	rooms, err := f.fetchRooms(ctx)
	if err != nil {
		return err
	}
	if f.stale(gen) {
		return nil
	}
	f.rooms = rooms
	return nil
}

func (f *Flow) fetchRooms(ctx context.Context) ([]api.Room, error) {
	if f.variant == VariantSeat {
		return f.locations.Rooms(ctx, f.floorID)
	}

	rooms, err := f.locations.RoomAvailability(ctx, f.floorID,
		FormatDate(f.date), WithSeconds(f.from), WithSeconds(f.to))
	if err != nil {
		return nil, err
	}

	conference := rooms[:0]
	for _, room := range rooms {
		if room.RoomType == api.RoomTypeConference {
			conference = append(conference, room)
		}
	}
	return conference, nil
}

func (f *Flow) advanceToSelection() {
	if f.variant == VariantSeat {
		f.stage = StageSelectingSeats
	} else {
		f.stage = StageSelectingRoom
	}
}

// bump invalidates in-flight fetches for superseded selections.
func (f *Flow) bump() uint64 {
	f.gen++
	return f.gen
}

func (f *Flow) stale(gen uint64) bool {
	return gen != f.gen
}

// Accessors for the presentation layer.

func (f *Flow) Stage() Stage               { return f.stage }
func (f *Flow) Err() string                { return f.lastErr }
func (f *Flow) Created() *view.Reservation { return f.created }
func (f *Flow) Buildings() []api.Building  { return f.buildings }
func (f *Flow) Floors() []api.Floor        { return f.floors }
func (f *Flow) Rooms() []api.Room          { return f.rooms }
func (f *Flow) Seats() []api.Seat          { return f.seats }
func (f *Flow) BuildingID() int64          { return f.buildingID }
func (f *Flow) FloorID() int64             { return f.floorID }
func (f *Flow) RoomID() int64              { return f.roomID }
func (f *Flow) SelectedSeats() []int64     { return append([]int64(nil), f.seatIDs...) }
func (f *Flow) Date() time.Time            { return f.date }
func (f *Flow) Times() (string, string)    { return f.from, f.to }

// RoomName resolves the selected room's name for confirmation prompts.
func (f *Flow) RoomName() string {
	for _, room := range f.rooms {
		if room.ID == f.roomID {
			return room.Name
		}
	}
	return "Unknown Room"
}
