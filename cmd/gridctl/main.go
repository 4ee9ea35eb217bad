package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
)

var CLI struct {
	Version  kong.VersionFlag
	Timezone string `help:"IANA timezone the grid is laid out in." default:"Local" env:"CALENDAR_TIMEZONE"`

	Range  RangeCmd  `cmd:"" help:"Print the date range a view covers."`
	Slots  SlotsCmd  `cmd:"" help:"Print the slot rows of the grid."`
	Select SelectCmd `cmd:"" help:"Resolve a slot selection to start and end instants."`
	Auth   struct {
		Google AuthGoogleCmd `cmd:"" help:"Authorize Google Calendar and store token.json."`
	} `cmd:"" help:"Authorize calendar sources."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("gridctl"),
		kong.Description("Offline calendar grid calculator"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx, err := newContext(CLI.Timezone, os.Stdout, time.Now)
	if err == nil {
		appCtx.In = os.Stdin
		err = ctx.Run(appCtx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
