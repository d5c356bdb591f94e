package diff

import (
	"context"
	"regexp"
	"strings"

	"github.com/Philanthropists/phab-email-events/internal/parser/html"
	"github.com/Philanthropists/phab-email-events/internal/sync/common"
	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

const (
	requiresChangesPhrase = "This revision now requires changes to proceed"
	readyToLandPhrase     = "This revision is now accepted and ready to land."
)

var regexpMap = map[types.EventKind]*regexp.Regexp{
	types.DiffNew:            regexp.MustCompile(`>(?P<user>[^>]+) created this revision`),
	types.DiffRequestChanges: regexp.MustCompile(`>(?P<user>[^>]+) requested changes to this revision\.`),
	types.DiffComment:        regexp.MustCompile(`>(?P<user>[^>]+) added a comment\.`),
	types.DiffInlineComments: regexp.MustCompile(`>(?P<user>[^>]+) added inline comments`),
}

type Diff struct {
	Handler types.Handler
}

func (d Diff) Parse(ctx context.Context, n types.Notification, body string) {
	text := common.UnescapeBody(body)

	d.handleInlineComments(ctx, n, body, text)
	d.handleNewRevision(ctx, n, text)
	d.handleComment(ctx, n, body, text)
	d.handleRequestChanges(ctx, n, text)
	d.handleReadyToLand(ctx, n, text)
}

func actor(kind types.EventKind, text string) (string, bool) {
	return common.ExtractField(text, regexpMap[kind], "user")
}

func (d Diff) handleNewRevision(ctx context.Context, n types.Notification, text string) {
	if user, ok := actor(types.DiffNew, text); ok {
		d.Handler.OnDiffNew(ctx, n, user)
	}
}

func (d Diff) handleRequestChanges(ctx context.Context, n types.Notification, text string) {
	if user, ok := actor(types.DiffRequestChanges, text); ok {
		d.Handler.OnDiffRequestChanges(ctx, n, &user)
	} else if strings.Contains(text, requiresChangesPhrase) {
		d.Handler.OnDiffRequestChanges(ctx, n, nil)
	}
}

func (d Diff) handleComment(ctx context.Context, n types.Notification, body, text string) {
	if user, ok := actor(types.DiffComment, text); ok {
		d.Handler.OnDiffComment(ctx, n, user, html.ExtractComment(body))
	}
}

func (d Diff) handleInlineComments(ctx context.Context, n types.Notification, body, text string) {
	if user, ok := actor(types.DiffInlineComments, text); ok {
		d.Handler.OnDiffInlineComments(ctx, n, user, html.ExtractInlineComments(body))
	}
}

func (d Diff) handleReadyToLand(ctx context.Context, n types.Notification, text string) {
	if strings.Contains(text, readyToLandPhrase) {
		d.Handler.OnDiffReadyToLand(ctx, n)
	}
}
