package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/view"
)

const upcomingLimit = 5

// DashboardCmd summarizes upcoming reservations, office presence and the
// weather for the configured city.
type DashboardCmd struct{}

func (d *DashboardCmd) Run(ctx context.Context, globals *Globals) error {
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

	fmt.Printf("Hello, %s!\n\n", sess.DisplayName())

	reservations, err := client.Reservations.ListForUser(ctx, sess.ID)
	if err != nil {
		return fail(err)
	}
	view.Sort(reservations)

	printUpcoming(reservations)
	printPresence(reservations, time.Now())

	// Weather is decoration; a failed lookup never breaks the dashboard.
	if weather, err := client.Environment.Weather(ctx, globals.City, time.Now().Format("2006-01-02")); err == nil {
		fmt.Printf("\nWeather in %s: %s\n", globals.City, weather)
	}

	return nil
}

func printUpcoming(reservations []view.Reservation) {
	fmt.Println("Upcoming reservations:")

	count := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, res := range reservations {
		if res.Status == view.StatusCancelled {
			continue
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", res.RawDate, res.TimeRange, res.Details, res.Status)
		count++
		if count == upcomingLimit {
			break
		}
	}
	w.Flush()

	if count == 0 {
		fmt.Println("  none, book a seat with `officebook book seat`")
	}
}

// printPresence counts distinct office days booked in the current month.
func printPresence(reservations []view.Reservation, now time.Time) {
	days := map[string]bool{}
	for _, res := range reservations {
		if res.Status == view.StatusCancelled {
			continue
		}
		if res.Date.Year() == now.Year() && res.Date.Month() == now.Month() {
			days[res.RawDate] = true
		}
	}

	fmt.Printf("\nOffice presence in %s: %d day(s)\n", now.Format("January"), len(days))
}
