package handler

import (
	"context"

	"github.com/Philanthropists/phab-email-events/internal/logger"
	"github.com/Philanthropists/phab-email-events/internal/sync/types"
	"github.com/Philanthropists/phab-email-events/internal/twilio"
)

// NewSMS sends one text message per event. Send failures are logged and
// never interrupt polling.
func NewSMS(client twilio.Client, fromNumber, toNumber string) types.Handler {
	return Events(func(_ context.Context, e types.Event) {
		log := logger.GetLogger()

		_, err := client.SendSms(fromNumber, toNumber, e.String())
		if err != nil {
			log.Errorw("an error occurred when sending notification sms",
				"kind", e.Kind,
				"id", e.Notification.Id,
				"error", err)
		}
	})
}
