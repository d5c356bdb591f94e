package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

func writeCredentials(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeCredentials(t, `{
		"mail-addr": "imap.example.com:993",
		"mail-username": "bot@example.com",
		"mail-password": "secret",
		"mail-mailbox": "Phabricator"
	}`)

	auth, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "imap.example.com:993", auth.Addr)
	assert.Equal(t, "bot@example.com", auth.Username)
	assert.Equal(t, "Phabricator", auth.Mailbox)
	assert.Equal(t, 3, auth.PollIntervalSeconds)
	assert.Equal(t, 60, auth.ReconnectIntervalSeconds)
	assert.Equal(t, "info", auth.LogLevel)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeCredentials(t, `{
		"mail-addr": "imap.example.com:993",
		"mail-username": "bot@example.com",
		"mail-password": "secret"
	}`)

	t.Setenv("PHAB_MAIL_PASSWORD", "from-env")
	t.Setenv("PHAB_POLL_INTERVAL_SECONDS", "10")

	auth, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", auth.Password)
	assert.Equal(t, 10, auth.PollIntervalSeconds)
	assert.Equal(t, "INBOX", auth.Mailbox)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("PHAB_MAIL_ADDR", "imap.example.com:993")
	t.Setenv("PHAB_MAIL_USERNAME", "bot@example.com")
	t.Setenv("PHAB_MAIL_PASSWORD", "secret")

	auth, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, "imap.example.com:993", auth.Addr)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeCredentials(t, `{not json`))
	assert.Error(t, err)

	_, err = Load(writeCredentials(t, `{"mail-addr": "imap.example.com:993"}`))
	assert.Error(t, err)
}

func TestSMSEnabled(t *testing.T) {
	assert.False(t, SMSEnabled(types.Auth{TwilioAccountSid: "AC123"}))
	assert.True(t, SMSEnabled(types.Auth{
		TwilioAccountSid: "AC123",
		TwilioAuthToken:  "token",
		TwilioFromNumber: "+100",
		TwilioToNumber:   "+200",
	}))
}
