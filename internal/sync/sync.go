package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/Philanthropists/phab-email-events/internal/datasource/imap"
	imaptypes "github.com/Philanthropists/phab-email-events/internal/datasource/imap/types"
	"github.com/Philanthropists/phab-email-events/internal/logger"
	"github.com/Philanthropists/phab-email-events/internal/parser"
	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

const (
	DefaultPollInterval      = 3 * time.Second
	DefaultReconnectInterval = 60 * time.Second
)

// Dialer opens an authenticated connection with the mailbox selected.
type Dialer func() (imap.MailClient, error)

func NewDialer(auth types.Auth) Dialer {
	return func() (imap.MailClient, error) {
		return imap.GetMailClient(auth.Addr, auth.Username, auth.Password, imaptypes.Mailbox(auth.Mailbox))
	}
}

type Option func(*Poller)

func WithCursorStore(store CursorStore) Option {
	return func(p *Poller) {
		p.cursors = store
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

func WithReconnectInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.reconnectInterval = d
		}
	}
}

// Poller owns the mailbox connection and the last seen message id.
// It is not safe for concurrent use.
type Poller struct {
	dial              Dialer
	parsers           parser.Parsers
	cursors           CursorStore
	interval          time.Duration
	reconnectInterval time.Duration
	now               func() time.Time

	client        imap.MailClient
	cursor        uint32
	cursorSet     bool
	lastReconnect time.Time
}

func NewPoller(dial Dialer, handler types.Handler, opts ...Option) *Poller {
	p := &Poller{
		dial:              dial,
		parsers:           parser.GetParsers(handler),
		cursors:           &MemoryCursor{},
		interval:          DefaultPollInterval,
		reconnectInterval: DefaultReconnectInterval,
		now:               time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Cursor returns the last seen message id.
func (p *Poller) Cursor() uint32 {
	return p.cursor
}

// Run polls until ctx is cancelled or a transport error occurs. Cancelling
// ctx during a blocked transport call returns immediately and abandons the
// connection.
func (p *Poller) Run(ctx context.Context) error {
	log := logger.GetLogger()

	log.Infow("starting poller",
		"interval", p.interval,
		"reconnectInterval", p.reconnectInterval)

	for {
		if ctx.Err() != nil {
			p.Close()
			log.Info("poller stopped")
			return nil
		}

		tick := make(chan error, 1)
		go func() {
			tick <- p.Tick(ctx)
		}()

		select {
		case err := <-tick:
			if err != nil {
				p.Close()
				return err
			}
		case <-ctx.Done():
			log.Warn("poller interrupted while waiting on the mailbox")
			return nil
		}

		select {
		case <-ctx.Done():
		case <-time.After(p.interval):
		}
	}
}

// Tick reconnects when the connection is older than the reconnect interval
// and then processes every message received since the last tick.
func (p *Poller) Tick(ctx context.Context) error {
	now := p.now()
	if p.client == nil || now.Sub(p.lastReconnect) > p.reconnectInterval {
		p.disconnect()
		if err := p.connect(ctx); err != nil {
			return err
		}
		p.lastReconnect = now
	}

	return p.check(ctx)
}

func (p *Poller) Close() {
	p.disconnect()
}

func (p *Poller) connect(ctx context.Context) error {
	log := logger.GetLogger()

	client, err := p.dial()
	if err != nil {
		return fmt.Errorf("connecting to mailbox: %w", err)
	}
	p.client = client
	log.Debug("connected to mailbox")

	if p.cursorSet {
		return nil
	}

	cursor, ok, err := p.cursors.Load(ctx)
	if err != nil {
		return err
	}

	if !ok {
		// skip historic mail
		ids, err := client.GetMessageIdsSince(0)
		if err != nil {
			return err
		}
		cursor = maxId(ids, 0)

		if err := p.cursors.Save(ctx, cursor); err != nil {
			return err
		}
	}

	p.cursor = cursor
	p.cursorSet = true
	log.Infow("cursor initialized",
		"cursor", cursor,
		"stored", ok)

	return nil
}

func (p *Poller) disconnect() {
	if p.client == nil {
		return
	}

	if err := p.client.Logout(); err != nil {
		logger.GetLogger().Warnw("could not log out from mailbox",
			"error", err)
	}
	p.client = nil
}

func (p *Poller) check(ctx context.Context) error {
	log := logger.GetLogger()

	msgs, newCursor, err := GetNewMessages(p.client, p.cursor)
	if err != nil {
		return err
	}

	if newCursor > p.cursor {
		if err := p.cursors.Save(ctx, newCursor); err != nil {
			return err
		}

		log.Debugw("cursor advanced",
			"from", p.cursor,
			"to", newCursor,
			"messages", len(msgs))
		p.cursor = newCursor
	}

	for _, msg := range msgs {
		p.process(ctx, msg)
	}

	return nil
}

func (p *Poller) process(ctx context.Context, msg imaptypes.Message) {
	n, ok := parser.ParseSubject(msg.Subject)
	if !ok {
		logger.GetLogger().Debugw("ignoring message without notification id",
			"uid", msg.Uid,
			"subject", msg.Subject)
		return
	}

	p.parsers.For(n).Parse(ctx, n, msg.Body)
}
