package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	zlog "github.com/rs/zerolog/log"

	"github.com/ITSSBackToSchool/echipa2-frontend/cmd/cli/internal/commands"
	"github.com/ITSSBackToSchool/echipa2-frontend/internal/config"
	"github.com/ITSSBackToSchool/echipa2-frontend/internal/logger"
)

var (
	version = "dev"
	cli     struct {
		Login    commands.LoginCmd    `cmd:"" help:"Log in to the booking backend"`
		Register commands.RegisterCmd `cmd:"" help:"Create an account"`
		Logout   commands.LogoutCmd   `cmd:"" help:"Log out and forget the stored session"`
		Whoami   commands.WhoamiCmd   `cmd:"" help:"Show the current session"`

		Dashboard    commands.DashboardCmd    `cmd:"" help:"Upcoming reservations, presence and weather"`
		Book         commands.BookCmd         `cmd:"" help:"Book a seat or a room"`
		Reservations commands.ReservationsCmd `cmd:"" help:"List, update or cancel reservations"`

		Buildings commands.BuildingsCmd `cmd:"" help:"List buildings"`
		Floors    commands.FloorsCmd    `cmd:"" help:"List floors of a building"`
		Rooms     commands.RoomsCmd     `cmd:"" help:"List rooms of a floor"`
		Seats     commands.SeatsCmd     `cmd:"" help:"List seat availability for a room and slot"`

		Weather   commands.WeatherCmd   `cmd:"" help:"Weather lookup"`
		Pollen    commands.PollenCmd    `cmd:"" help:"Pollen lookup"`
		Traffic   commands.TrafficCmd   `cmd:"" help:"Traffic route lookup"`
		Analytics commands.AnalyticsCmd `cmd:"" help:"Office occupancy overview"`
		Prefs     commands.PrefsCmd     `cmd:"" help:"Show or change client preferences"`

		Server   string `help:"Backend server URL" env:"OFFICEBOOK_SERVER" default:"${server_default}"`
		City     string `help:"Default city for weather lookups" env:"OFFICEBOOK_CITY" default:"${city_default}"`
		StateDir string `help:"Session storage directory" env:"OFFICEBOOK_STATE_DIR" default:"${state_default}"`
		CacheDir string `help:"HTTP cache directory" env:"OFFICEBOOK_CACHE_DIR" default:"${cache_default}"`
		Debug    bool   `help:"Enable debug mode."`
		Version  kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()

	cfgPath := os.Getenv("OFFICEBOOK_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cmd := kong.Parse(&cli,
		kong.Vars{
			"version":        version,
			"server_default": cfg.Server,
			"city_default":   cfg.City,
			"state_default":  cfg.StateDir,
			"cache_default":  cfg.CacheDir,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	zlog.Logger = logger.Setup(cli.Debug)

	err = cmd.Run(&commands.Globals{
		Debug:    cli.Debug,
		Version:  version,
		Server:   cli.Server,
		City:     cli.City,
		StateDir: cli.StateDir,
		CacheDir: cli.CacheDir,
	})
	cmd.FatalIfErrorf(err)
}
