package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/api"
	"github.com/ITSSBackToSchool/echipa2-frontend/internal/booking"
)

// BuildingsCmd lists all buildings.
type BuildingsCmd struct{}

func (b *BuildingsCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := authedClient(globals)
	if err != nil {
		return err
	}

	buildings, err := client.Locations.Buildings(ctx)
	if err != nil {
		return fail(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, building := range buildings {
		fmt.Fprintf(w, "%d\t%s\n", building.ID, building.Name)
	}
	w.Flush()
	return nil
}

// FloorsCmd lists the floors of a building.
type FloorsCmd struct {
	Building int64 `arg:"" help:"Building id"`
}

func (f *FloorsCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := authedClient(globals)
	if err != nil {
		return err
	}

	floors, err := client.Locations.Floors(ctx, f.Building)
	if err != nil {
		return fail(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, floor := range floors {
		fmt.Fprintf(w, "%d\t%s\n", floor.ID, floor.Name)
	}
	w.Flush()
	return nil
}

// RoomsCmd lists the rooms of a floor, with availability when a slot is given.
type RoomsCmd struct {
	Floor int64  `arg:"" help:"Floor id"`
	Date  string `help:"Date for availability (YYYY-MM-DD)"`
	From  string `help:"Start time for availability (HH:MM)"`
	To    string `help:"End time for availability (HH:MM)"`
}

func (r *RoomsCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := authedClient(globals)
	if err != nil {
		return err
	}

	var rooms []api.Room
	if r.Date != "" && r.From != "" && r.To != "" {
		rooms, err = client.Locations.RoomAvailability(ctx, r.Floor,
			r.Date, booking.WithSeconds(r.From), booking.WithSeconds(r.To))
	} else {
		rooms, err = client.Locations.Rooms(ctx, r.Floor)
	}
	if err != nil {
		return fail(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSEATS\tAVAILABLE")
	for _, room := range rooms {
		available := ""
		if room.IsAvailable {
			available = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", room.ID, room.Name, room.RoomType, room.SeatCount, available)
	}
	w.Flush()
	return nil
}

// SeatsCmd lists seat availability for a room and slot.
type SeatsCmd struct {
	Building int64  `help:"Building id" required:""`
	Floor    int64  `help:"Floor id" required:""`
	Room     int64  `help:"Room id" required:""`
	Date     string `help:"Date (YYYY-MM-DD, defaults to today)"`
	From     string `help:"Start time (HH:MM)" default:"09:00"`
	To       string `help:"End time (HH:MM)" default:"10:00"`
}

func (s *SeatsCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := authedClient(globals)
	if err != nil {
		return err
	}

	date := s.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	seats, err := client.Locations.AvailableSeats(ctx, api.SeatQuery{
		BuildingID: s.Building,
		FloorID:    s.Floor,
		RoomID:     s.Room,
		Date:       date,
		StartTime:  booking.WithSeconds(s.From),
		EndTime:    booking.WithSeconds(s.To),
	})
	if err != nil {
		return fail(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEAT\tAVAILABLE")
	for _, seat := range seats {
		available := ""
		if seat.IsAvailable {
			available = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", seat.ID, seat.SeatNumber, available)
	}
	w.Flush()
	return nil
}

// authedClient wires up the store, checks the session and returns a client.
func authedClient(globals *Globals) (*api.Client, error) {
	store, err := globals.NewStore()
	if err != nil {
		return nil, err
	}
	if _, err := globals.RequireSession(store); err != nil {
		return nil, err
	}
	return globals.NewClient(store)
}
