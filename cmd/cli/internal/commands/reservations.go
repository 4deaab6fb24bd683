package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/booking"
	"github.com/ITSSBackToSchool/echipa2-frontend/internal/view"
)

// ReservationsCmd groups the reservation list/update/cancel operations.
type ReservationsCmd struct {
	List   ReservationsListCmd   `cmd:"" default:"withargs" help:"List your reservations"`
	Update ReservationsUpdateCmd `cmd:"" help:"Move a reservation to another date or time"`
	Cancel ReservationsCancelCmd `cmd:"" help:"Cancel a reservation"`
}

// ReservationsListCmd lists the user's reservations, cancelled ones last.
type ReservationsListCmd struct {
	All bool `help:"Include cancelled reservations" default:"true"`
}

func (r *ReservationsListCmd) Run(ctx context.Context, globals *Globals) error {
	store, err := globals.NewStore()
	if err != nil {
		return err
	}
	sess, err := globals.RequireSession(store)
	if err != nil {
		return err
	}
	client, err := globals.NewClient(store)
	if err != nil {
		return err
	}

	reservations, err := client.Reservations.ListForUser(ctx, sess.ID)
	if err != nil {
		return fail(err)
	}
	view.Sort(reservations)

	if len(reservations) == 0 {
		fmt.Println("No reservations found.")
		fmt.Println()
		fmt.Println("To book a seat or a room:")
		fmt.Println("  officebook book seat")
		fmt.Println("  officebook book room")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDATE\tTIME\tDETAILS\tSTATUS")
	for _, res := range reservations {
		if !r.All && res.Status == view.StatusCancelled {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			res.ID, res.DisplayName(), res.RawDate, res.TimeRange, res.Details, res.Status)
	}
	w.Flush()
	return nil
}

// ReservationsUpdateCmd moves a reservation, after explicit confirmation.
type ReservationsUpdateCmd struct {
	ID   int64  `arg:"" help:"Reservation id"`
	Date string `help:"New date (YYYY-MM-DD)" required:""`
	From string `help:"New start time (HH:MM)" required:""`
	To   string `help:"New end time (HH:MM)" required:""`
	Yes  bool   `help:"Skip the confirmation prompt"`
}

func (r *ReservationsUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	store, err := globals.NewStore()
	if err != nil {
		return err
	}
	if _, err := globals.RequireSession(store); err != nil {
		return err
	}
	client, err := globals.NewClient(store)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Move reservation %d to %s %s - %s?", r.ID, r.Date, r.From, r.To)
	if !r.Yes && !confirm(prompt) {
		fmt.Println("Aborted.")
		return nil
	}

	updated, err := client.Reservations.Update(ctx, r.ID,
		r.Date, booking.WithSeconds(r.From), booking.WithSeconds(r.To))
	if err != nil {
		return fail(err)
	}

	fmt.Printf("%s moved to %s, %s\n", updated.DisplayName(), updated.RawDate, updated.TimeRange)
	return nil
}

// ReservationsCancelCmd cancels a reservation, after explicit confirmation.
type ReservationsCancelCmd struct {
	ID  int64 `arg:"" help:"Reservation id"`
	Yes bool  `help:"Skip the confirmation prompt"`
}

func (r *ReservationsCancelCmd) Run(ctx context.Context, globals *Globals) error {
	store, err := globals.NewStore()
	if err != nil {
		return err
	}
	if _, err := globals.RequireSession(store); err != nil {
		return err
	}
	client, err := globals.NewClient(store)
	if err != nil {
		return err
	}

	if !r.Yes && !confirm(fmt.Sprintf("Are you sure you want to cancel reservation %d?", r.ID)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := client.Reservations.Cancel(ctx, r.ID); err != nil {
		return fail(err)
	}

	fmt.Printf("Reservation %d cancelled.\n", r.ID)
	return nil
}
