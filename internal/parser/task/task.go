package task

import (
	"context"
	"regexp"

	"github.com/Philanthropists/phab-email-events/internal/logger"
	"github.com/Philanthropists/phab-email-events/internal/parser/html"
	"github.com/Philanthropists/phab-email-events/internal/sync/common"
	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

var (
	commentRegexp  = regexp.MustCompile(`>(?P<user>[^>]+) added a comment\.`)
	moveRegexp     = regexp.MustCompile(`>(?P<user>[^>]+) moved this task`)
	movementRegexp = regexp.MustCompile(`moved this task (?P<movement>[^.]+)`)
)

type Task struct {
	Handler types.Handler
}

func (t Task) Parse(ctx context.Context, n types.Notification, body string) {
	text := common.UnescapeBody(body)

	t.handleComment(ctx, n, body, text)
	t.handleMove(ctx, n, text)
}

func (t Task) handleComment(ctx context.Context, n types.Notification, body, text string) {
	if user, ok := common.ExtractField(text, commentRegexp, "user"); ok {
		t.Handler.OnTaskComment(ctx, n, user, html.ExtractComment(body))
	}
}

// The movement ("from Backlog to Doing on the Sprint board") is only logged;
// OnTaskMove carries the actor alone.
func (t Task) handleMove(ctx context.Context, n types.Notification, text string) {
	user, ok := common.ExtractField(text, moveRegexp, "user")
	if !ok {
		return
	}

	if movement, ok := common.ExtractField(text, movementRegexp, "movement"); ok {
		logger.GetLogger().Debugw("task moved",
			"id", n.Id,
			"actor", user,
			"movement", movement)
	}

	t.Handler.OnTaskMove(ctx, n, user)
}
