package api

import (
	"context"
	"net/url"
)

// Route is the backend's traffic answer for an origin/destination pair.
type Route struct {
	Start              string  `json:"start"`
	End                string  `json:"end"`
	DistanceKm         float64 `json:"distanceKm"`
	TrafficDurationMin int     `json:"trafficDurationMin"`
	TrafficDelayMin    int     `json:"trafficDelayMin"`
	TrafficLevel       string  `json:"trafficLevel"`
}

// EnvironmentGateway reads the auxiliary weather, pollen and traffic
// endpoints. These are non-core lookups the dashboard and utility pages use.
type EnvironmentGateway struct {
	client *Client
}

// Weather returns the backend's plain-text weather summary for a city/date.
func (g *EnvironmentGateway) Weather(ctx context.Context, city, date string) (string, error) {
	query := url.Values{}
	query.Set("city", city)
	query.Set("date", date)
	return g.client.getText(ctx, "/api/weather", query)
}

// Pollen returns the backend's plain-text pollen report for a city.
func (g *EnvironmentGateway) Pollen(ctx context.Context, city string) (string, error) {
	query := url.Values{}
	query.Set("city", city)
	return g.client.getText(ctx, "/api/pollen", query)
}

// Traffic returns the route summary between two addresses.
func (g *EnvironmentGateway) Traffic(ctx context.Context, origin, destination string) (*Route, error) {
	query := url.Values{}
	query.Set("origin", origin)
	query.Set("destination", destination)

	var route Route
	if err := g.client.get(ctx, "/api/traffic", query, &route); err != nil {
		return nil, err
	}
	return &route, nil
}
