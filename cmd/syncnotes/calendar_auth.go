package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"syncnotes/config"
	"syncnotes/pkg/gcalendar"
)

func newCalendarAuthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar-auth [CREDENTIALS]",
		Short: "Authorize Google Calendar access for desktop OAuth credentials",
		Long: `Run the OAuth consent flow once for desktop-app credentials and store
token.json next to the credentials file, where calendar export looks for it.

CREDENTIALS defaults to google_calendar.credentials_path from the config.
Service Account credentials need no token and no consent flow.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCalendarAuth,
	}
}

func runCalendarAuth(cmd *cobra.Command, args []string) error {
	credsPath, err := credentialsPath(args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}

	oauthCfg, err := gcalendar.NewOAuthConfig(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Fprintf(out, "\n%s\n\n", oauthCfg.AuthCodeURL("syncnotes", oauth2.AccessTypeOffline))
	fmt.Fprint(out, "2. Paste the authorization code here: ")

	code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && strings.TrimSpace(code) == "" {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := oauthCfg.Exchange(cmd.Context(), strings.TrimSpace(code))
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	tokenPath := gcalendar.TokenPath(credsPath)
	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nSaved %s\n", tokenPath)
	return nil
}

func credentialsPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	cfg, err := config.LoadFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	if !cfg.GoogleCalendar.Enabled() {
		return "", fmt.Errorf("no credentials given and google_calendar.credentials_path is not set")
	}
	return cfg.GoogleCalendar.CredentialsPath, nil
}
