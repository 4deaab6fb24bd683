package commands

import (
	"context"
	"fmt"
	"time"
)

// WeatherCmd prints the weather summary for a city.
type WeatherCmd struct {
	City string `arg:"" optional:"" help:"City name (defaults to the configured city)"`
	Date string `help:"Date (YYYY-MM-DD, defaults to today)"`
}

func (w *WeatherCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := authedClient(globals)
	if err != nil {
		return err
	}

	city := w.City
	if city == "" {
		city = globals.City
	}
	date := w.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	report, err := client.Environment.Weather(ctx, city, date)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Weather in %s on %s:\n%s\n", city, date, report)
	return nil
}

// PollenCmd prints the pollen levels for a city.
type PollenCmd struct {
	City string `arg:"" optional:"" help:"City name (defaults to the configured city)"`
}

func (p *PollenCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := authedClient(globals)
	if err != nil {
		return err
	}

	city := p.City
	if city == "" {
		city = globals.City
	}

	report, err := client.Environment.Pollen(ctx, city)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Pollen levels in %s:\n%s\n", city, report)
	return nil
}

// TrafficCmd prints the traffic conditions between two addresses.
type TrafficCmd struct {
	Origin      string `arg:"" help:"Start address"`
	Destination string `arg:"" help:"Destination address"`
}

func (t *TrafficCmd) Run(ctx context.Context, globals *Globals) error {
	client, err := authedClient(globals)
	if err != nil {
		return err
	}

	route, err := client.Environment.Traffic(ctx, t.Origin, t.Destination)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("%s -> %s\n", route.Start, route.End)
	fmt.Printf("Distance: %.1f km\n", route.DistanceKm)
	fmt.Printf("Duration: %d min (%d min delay)\n", route.TrafficDurationMin, route.TrafficDelayMin)
	fmt.Printf("Traffic:  %s\n", route.TrafficLevel)
	return nil
}
