package handler

import (
	"context"

	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

// Multi calls each handler in order.
type Multi []types.Handler

func (m Multi) OnDiffNew(ctx context.Context, n types.Notification, actor string) {
	for _, h := range m {
		h.OnDiffNew(ctx, n, actor)
	}
}

func (m Multi) OnDiffRequestChanges(ctx context.Context, n types.Notification, actor *string) {
	for _, h := range m {
		h.OnDiffRequestChanges(ctx, n, actor)
	}
}

func (m Multi) OnDiffComment(ctx context.Context, n types.Notification, actor string, comment *string) {
	for _, h := range m {
		h.OnDiffComment(ctx, n, actor, comment)
	}
}

func (m Multi) OnDiffInlineComments(ctx context.Context, n types.Notification, actor string, comments []string) {
	for _, h := range m {
		h.OnDiffInlineComments(ctx, n, actor, comments)
	}
}

func (m Multi) OnDiffReadyToLand(ctx context.Context, n types.Notification) {
	for _, h := range m {
		h.OnDiffReadyToLand(ctx, n)
	}
}

func (m Multi) OnTaskComment(ctx context.Context, n types.Notification, actor string, comment *string) {
	for _, h := range m {
		h.OnTaskComment(ctx, n, actor, comment)
	}
}

func (m Multi) OnTaskMove(ctx context.Context, n types.Notification, actor string) {
	for _, h := range m {
		h.OnTaskMove(ctx, n, actor)
	}
}
