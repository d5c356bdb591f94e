package types

import (
	"context"
	"fmt"
	"strings"
)

type Auth struct {
	Addr     string `json:"mail-addr" env:"PHAB_MAIL_ADDR"`
	Username string `json:"mail-username" env:"PHAB_MAIL_USERNAME"`
	Password string `json:"mail-password" env:"PHAB_MAIL_PASSWORD"`
	Mailbox  string `json:"mail-mailbox" env:"PHAB_MAIL_MAILBOX"`

	PollIntervalSeconds      int `json:"poll-interval-seconds" env:"PHAB_POLL_INTERVAL_SECONDS"`
	ReconnectIntervalSeconds int `json:"reconnect-interval-seconds" env:"PHAB_RECONNECT_INTERVAL_SECONDS"`

	LogLevel string `json:"log-level" env:"PHAB_LOG_LEVEL"`
	LogDev   bool   `json:"log-dev" env:"PHAB_LOG_DEV"`

	CursorTable  string `json:"cursor-table" env:"PHAB_CURSOR_TABLE"`
	CursorRegion string `json:"cursor-region" env:"PHAB_CURSOR_REGION"`

	TwilioAccountSid string `json:"twilio-account-sid" env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `json:"twilio-auth-token" env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `json:"twilio-from-number" env:"TWILIO_FROM_NUMBER"`
	TwilioToNumber   string `json:"twilio-to-number" env:"TWILIO_TO_NUMBER"`
}

// Notification identifies the revision or task an email is about.
type Notification struct {
	Id          string
	Description *string
}

// IsTask reports whether the notification refers to a task (T-prefixed id).
func (n Notification) IsTask() bool {
	return strings.HasPrefix(n.Id, "T")
}

func (n Notification) String() string {
	if n.Description == nil {
		return n.Id
	}

	return fmt.Sprintf("%s: %s", n.Id, *n.Description)
}

type EventKind string

const (
	DiffNew            EventKind = "diff-new"
	DiffRequestChanges EventKind = "diff-request-changes"
	DiffComment        EventKind = "diff-comment"
	DiffInlineComments EventKind = "diff-inline-comments"
	DiffReadyToLand    EventKind = "diff-ready-to-land"
	TaskComment        EventKind = "task-comment"
	TaskMove           EventKind = "task-move"
)

// Event is a flattened form of a single handler callback.
type Event struct {
	Kind         EventKind
	Notification Notification
	Actor        *string
	Comment      *string
	Comments     []string
}

func (e Event) String() string {
	actor := "someone"
	if e.Actor != nil {
		actor = *e.Actor
	}

	var action string
	switch e.Kind {
	case DiffNew:
		action = actor + " created this revision"
	case DiffRequestChanges:
		action = actor + " requested changes"
	case DiffComment, TaskComment:
		action = actor + " added a comment"
		if e.Comment != nil {
			action += ": " + *e.Comment
		}
	case DiffInlineComments:
		action = fmt.Sprintf("%s added %d inline comments", actor, len(e.Comments))
	case DiffReadyToLand:
		action = "accepted and ready to land"
	case TaskMove:
		action = actor + " moved this task"
	default:
		action = string(e.Kind)
	}

	return fmt.Sprintf("[%s] %s", e.Notification, action)
}

// Handler receives parsed notification events. Callbacks are invoked
// synchronously from the poll loop.
type Handler interface {
	OnDiffNew(ctx context.Context, n Notification, actor string)
	// actor is nil when the email only says the revision requires changes.
	OnDiffRequestChanges(ctx context.Context, n Notification, actor *string)
	OnDiffComment(ctx context.Context, n Notification, actor string, comment *string)
	OnDiffInlineComments(ctx context.Context, n Notification, actor string, comments []string)
	OnDiffReadyToLand(ctx context.Context, n Notification)
	OnTaskComment(ctx context.Context, n Notification, actor string, comment *string)
	OnTaskMove(ctx context.Context, n Notification, actor string)
}

type ParserDelegate interface {
	Parse(ctx context.Context, n Notification, body string)
}
