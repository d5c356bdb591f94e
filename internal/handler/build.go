package handler

import (
	"github.com/Philanthropists/phab-email-events/internal/config"
	"github.com/Philanthropists/phab-email-events/internal/sync/types"
	"github.com/Philanthropists/phab-email-events/internal/twilio"
)

// Build logs every event and, when Twilio is configured, texts it as well.
func Build(auth types.Auth) (types.Handler, error) {
	handlers := Multi{NewLog()}

	if config.SMSEnabled(auth) {
		client, err := twilio.NewClient(auth.TwilioAccountSid, auth.TwilioAuthToken)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, NewSMS(client, auth.TwilioFromNumber, auth.TwilioToNumber))
	}

	return handlers, nil
}
