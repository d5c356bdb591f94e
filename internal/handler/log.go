package handler

import (
	"context"

	"github.com/Philanthropists/phab-email-events/internal/logger"
	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

func NewLog() types.Handler {
	return Events(func(_ context.Context, e types.Event) {
		log := logger.GetLogger()

		fields := []interface{}{
			"kind", e.Kind,
			"id", e.Notification.Id,
		}
		if e.Notification.Description != nil {
			fields = append(fields, "description", *e.Notification.Description)
		}
		if e.Actor != nil {
			fields = append(fields, "actor", *e.Actor)
		}
		if e.Comment != nil {
			fields = append(fields, "comment", *e.Comment)
		}
		if e.Kind == types.DiffInlineComments {
			fields = append(fields, "comments", e.Comments)
		}

		log.Infow("notification event", fields...)
	})
}
