package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/booking"
	"github.com/ITSSBackToSchool/echipa2-frontend/internal/session"
	"github.com/ITSSBackToSchool/echipa2-frontend/internal/view"
)

// BookCmd groups the two booking flows.
type BookCmd struct {
	Seat BookSeatCmd `cmd:"" help:"Book one or more seats"`
	Room BookRoomCmd `cmd:"" help:"Book a conference room"`
}

// bookingFlags are the selection flags shared by both flows.
type bookingFlags struct {
	Building int64  `help:"Building id (defaults to the first building)"`
	Floor    int64  `help:"Floor id (defaults to the first floor)"`
	Date     string `help:"Reservation date, YYYY-MM-DD (defaults to today)"`
	Slot     string `help:"Preset time slot: morning, afternoon or full-day"`
	From     string `help:"Start time (HH:MM)"`
	To       string `help:"End time (HH:MM)"`
	Yes      bool   `help:"Skip the confirmation prompt"`
}

// BookSeatCmd walks the seat-booking flow.
type BookSeatCmd struct {
	bookingFlags
	Room  int64   `help:"Room id (defaults to the first room)"`
	Seats []int64 `help:"Seat ids to book" name:"seat"`
	List  bool    `help:"Only list seat availability, do not book"`
}

func (b *BookSeatCmd) Run(ctx context.Context, globals *Globals) error {
	flow, sess, err := startFlow(ctx, globals, booking.VariantSeat, b.bookingFlags)
	if err != nil {
		return err
	}

	if b.Room != 0 && b.Room != flow.RoomID() {
		if err := flow.SelectRoom(ctx, b.Room); err != nil {
			return fail(err)
		}
	}

	if b.List || len(b.Seats) == 0 {
		printSeats(flow)
		return nil
	}

	for _, seatID := range b.Seats {
		flow.ToggleSeat(seatID)
	}
	if len(flow.SelectedSeats()) != len(b.Seats) {
		return errors.New("Some of the requested seats are not available for this slot.")
	}

	from, to := flow.Times()
	prompt := fmt.Sprintf("Book %d seat(s) in %s on %s, %s - %s for %s?",
		len(b.Seats), flow.RoomName(), booking.FormatDate(flow.Date()), from, to, sess.DisplayName())
	if !b.Yes && !confirm(prompt) {
		fmt.Println("Aborted.")
		return nil
	}

	created, err := flow.Confirm(ctx)
	if err != nil {
		return fail(err)
	}
	printBooked(created)
	return nil
}

// BookRoomCmd walks the room-booking flow.
type BookRoomCmd struct {
	bookingFlags
	Room int64 `help:"Room id to book"`
	List bool  `help:"Only list room availability, do not book"`
}

func (b *BookRoomCmd) Run(ctx context.Context, globals *Globals) error {
	flow, sess, err := startFlow(ctx, globals, booking.VariantRoom, b.bookingFlags)
	if err != nil {
		return err
	}

	if b.List || b.Room == 0 {
		printRooms(flow)
		return nil
	}

	if err := flow.SelectRoom(ctx, b.Room); err != nil {
		return fail(err)
	}

	from, to := flow.Times()
	prompt := fmt.Sprintf("Book %s on %s, %s - %s for %s?",
		flow.RoomName(), booking.FormatDate(flow.Date()), from, to, sess.DisplayName())
	if !b.Yes && !confirm(prompt) {
		fmt.Println("Aborted.")
		return nil
	}

	created, err := flow.Confirm(ctx)
	if err != nil {
		return fail(err)
	}
	printBooked(created)
	return nil
}

// startFlow builds a flow, runs the initial location cascade and applies the
// common selection flags in cascade order.
func startFlow(ctx context.Context, globals *Globals, variant booking.Variant, flags bookingFlags) (*booking.Flow, *session.Session, error) {
	store, err := globals.NewStore()
	if err != nil {
		return nil, nil, err
	}
	sess, err := globals.RequireSession(store)
	if err != nil {
		return nil, nil, err
	}
	client, err := globals.NewClient(store)
	if err != nil {
		return nil, nil, err
	}

	flow := booking.NewFlow(variant, client.Locations, client.Reservations, sess.ID)
	if err := flow.Init(ctx); err != nil {
		return nil, nil, fail(err)
	}

	if flags.Date != "" {
		date, err := time.Parse("2006-01-02", flags.Date)
		if err != nil {
			return nil, nil, errors.Newf("invalid date %q, expected YYYY-MM-DD", flags.Date)
		}
		if err := flow.SetDate(ctx, date); err != nil {
			return nil, nil, fail(err)
		}
	}

	switch {
	case flags.Slot != "":
		if err := flow.SelectSlot(ctx, booking.Slot(flags.Slot)); err != nil {
			return nil, nil, err
		}
	case flags.From != "" && flags.To != "":
		if err := flow.SetTimes(ctx, flags.From, flags.To); err != nil {
			return nil, nil, fail(err)
		}
	}

	if flags.Building != 0 && flags.Building != flow.BuildingID() {
		if err := flow.SelectBuilding(ctx, flags.Building); err != nil {
			return nil, nil, fail(err)
		}
	}
	if flags.Floor != 0 && flags.Floor != flow.FloorID() {
		if err := flow.SelectFloor(ctx, flags.Floor); err != nil {
			return nil, nil, fail(err)
		}
	}

	return flow, sess, nil
}

func printSeats(flow *booking.Flow) {
	from, to := flow.Times()
	fmt.Printf("Seats in %s on %s, %s - %s:\n\n",
		flow.RoomName(), booking.FormatDate(flow.Date()), from, to)

	if len(flow.Seats()) == 0 {
		fmt.Println("No seats found for this room.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSEAT\tAVAILABLE")
	for _, seat := range flow.Seats() {
		available := ""
		if seat.IsAvailable {
			available = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", seat.ID, seat.SeatNumber, available)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Book with:")
	fmt.Println("  officebook book seat --seat <id> [--seat <id> ...]")
}

func printRooms(flow *booking.Flow) {
	from, to := flow.Times()
	fmt.Printf("Conference rooms on %s, %s - %s:\n\n",
		booking.FormatDate(flow.Date()), from, to)

	if len(flow.Rooms()) == 0 {
		fmt.Println("No conference rooms found for this floor.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tROOM\tSEATS\tAVAILABLE")
	for _, room := range flow.Rooms() {
		available := ""
		if room.IsAvailable {
			available = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", room.ID, room.Name, room.SeatCount, available)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Book with:")
	fmt.Println("  officebook book room --room <id>")
}

func printBooked(created *view.Reservation) {
	fmt.Printf("Booked! %s on %s, %s\n", created.DisplayName(), created.RawDate, created.TimeRange)
	if created.Details != "" {
		fmt.Printf("Location: %s\n", created.Details)
	}
}
