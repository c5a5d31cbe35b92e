package gcalendar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// TokenPath is where the OAuth token for installed-app credentials is kept.
func TokenPath(credentialsPath string) string {
	return filepath.Join(filepath.Dir(credentialsPath), tokenFile)
}

// NewOAuthConfig parses installed-app (desktop) OAuth credentials for the consent flow.
func NewOAuthConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("parse OAuth desktop credentials: %w", err)
	}
	return cfg, nil
}

// SaveToken writes tok to path, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
