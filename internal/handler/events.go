package handler

import (
	"context"

	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

// Events adapts a function over flattened events into a types.Handler.
type Events func(ctx context.Context, e types.Event)

func (f Events) OnDiffNew(ctx context.Context, n types.Notification, actor string) {
	f(ctx, types.Event{Kind: types.DiffNew, Notification: n, Actor: &actor})
}

func (f Events) OnDiffRequestChanges(ctx context.Context, n types.Notification, actor *string) {
	f(ctx, types.Event{Kind: types.DiffRequestChanges, Notification: n, Actor: actor})
}

func (f Events) OnDiffComment(ctx context.Context, n types.Notification, actor string, comment *string) {
	f(ctx, types.Event{Kind: types.DiffComment, Notification: n, Actor: &actor, Comment: comment})
}

func (f Events) OnDiffInlineComments(ctx context.Context, n types.Notification, actor string, comments []string) {
	f(ctx, types.Event{Kind: types.DiffInlineComments, Notification: n, Actor: &actor, Comments: comments})
}

func (f Events) OnDiffReadyToLand(ctx context.Context, n types.Notification) {
	f(ctx, types.Event{Kind: types.DiffReadyToLand, Notification: n})
}

func (f Events) OnTaskComment(ctx context.Context, n types.Notification, actor string, comment *string) {
	f(ctx, types.Event{Kind: types.TaskComment, Notification: n, Actor: &actor, Comment: comment})
}

func (f Events) OnTaskMove(ctx context.Context, n types.Notification, actor string) {
	f(ctx, types.Event{Kind: types.TaskMove, Notification: n, Actor: &actor})
}
