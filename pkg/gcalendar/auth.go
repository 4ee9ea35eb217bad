package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

var ErrNotDesktopApp = errors.New("credentials are not an OAuth Desktop App client")

func oauthConfigFromJSON(credentialsJSON []byte) (*oauth2.Config, error) {
	config, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDesktopApp, err)
	}
	if config.ClientID == "" {
		return nil, ErrNotDesktopApp
	}
	return config, nil
}

// AuthCodeURL returns the consent page a user opens to authorize calendar access.
func AuthCodeURL(credentialsJSON []byte, state string) (string, error) {
	config, err := oauthConfigFromJSON(credentialsJSON)
	if err != nil {
		return "", err
	}
	return config.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// ExchangeCode trades the authorization code for a token and stores it at
// tokenPath with owner-only permissions.
func ExchangeCode(ctx context.Context, credentialsJSON []byte, code, tokenPath string) (*oauth2.Token, error) {
	config, err := oauthConfigFromJSON(credentialsJSON)
	if err != nil {
		return nil, err
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", tokenPath, err)
	}
	return tok, nil
}
