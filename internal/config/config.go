package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	imaptypes "github.com/Philanthropists/phab-email-events/internal/datasource/imap/types"
	"github.com/Philanthropists/phab-email-events/internal/logger"
	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

const (
	DefaultCredentialsFile          = "credentials.json"
	defaultPollIntervalSeconds      = 3
	defaultReconnectIntervalSeconds = 60
	defaultLogLevel                 = "info"
)

// Load reads the credentials file (if it exists), then .env, then the
// environment. Later sources win.
func Load(credentialsFile string) (types.Auth, error) {
	auth := types.Auth{}

	if credentialsFile != "" {
		err := readCredentials(credentialsFile, &auth)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return types.Auth{}, err
		}
	}

	if err := godotenv.Load(); err != nil {
		logger.GetLogger().Debugw("no .env file loaded",
			"error", err)
	}

	if err := env.Parse(&auth); err != nil {
		return types.Auth{}, fmt.Errorf("parsing environment: %w", err)
	}

	setDefaults(&auth)

	return auth, Validate(auth)
}

func readCredentials(filename string, auth *types.Auth) error {
	credFile, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer credFile.Close()

	authBytes, err := io.ReadAll(credFile)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(authBytes, auth); err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	return nil
}

func setDefaults(auth *types.Auth) {
	if auth.Mailbox == "" {
		auth.Mailbox = string(imaptypes.Inbox)
	}
	if auth.PollIntervalSeconds <= 0 {
		auth.PollIntervalSeconds = defaultPollIntervalSeconds
	}
	if auth.ReconnectIntervalSeconds <= 0 {
		auth.ReconnectIntervalSeconds = defaultReconnectIntervalSeconds
	}
	if auth.LogLevel == "" {
		auth.LogLevel = defaultLogLevel
	}
}

func Validate(auth types.Auth) error {
	switch {
	case auth.Addr == "":
		return errors.New("mail address cannot be empty")
	case auth.Username == "" || auth.Password == "":
		return errors.New("mail username and password cannot be empty")
	}

	return nil
}

// SMSEnabled reports whether every Twilio setting is present.
func SMSEnabled(auth types.Auth) bool {
	return auth.TwilioAccountSid != "" &&
		auth.TwilioAuthToken != "" &&
		auth.TwilioFromNumber != "" &&
		auth.TwilioToNumber != ""
}
