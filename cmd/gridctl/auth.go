package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"calendar-grid/pkg/gcalendar"
)

// AuthGoogleCmd authorizes a Desktop App credential once and stores the token the
// API server reads at startup.
type AuthGoogleCmd struct {
	Credentials string `help:"OAuth Desktop App credentials file." type:"existingfile" default:"google-credentials.json"`
	Token       string `help:"Where to store the token." type:"path" default:"token.json"`
}

func (c *AuthGoogleCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.Credentials)
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}

	url, err := gcalendar.AuthCodeURL(data, "gridctl")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, "Open this URL and sign in with the calendar account:")
	fmt.Fprintln(ctx.Out)
	fmt.Fprintln(ctx.Out, url)
	fmt.Fprintln(ctx.Out)
	fmt.Fprint(ctx.Out, "Paste the authorization code: ")

	code, err := bufio.NewReader(ctx.In).ReadString('\n')
	if err != nil && code == "" {
		return fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("empty authorization code")
	}

	if _, err := gcalendar.ExchangeCode(context.Background(), data, code, c.Token); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "\nToken saved to %s. Point google_calendar.token_path at it and restart the API.\n", c.Token)
	return nil
}
