package imap

import (
	"bytes"
	"io"
	"strings"

	"github.com/Philanthropists/phab-email-events/internal/logger"
	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

// getMessageContent returns the subject and the decoded text of every
// inline part joined by newlines. Undecodable input degrades to the raw bytes.
func getMessageContent(r io.Reader) (string, string) {
	log := logger.GetLogger()

	raw, err := io.ReadAll(r)
	if err != nil {
		log.Warnw("could not read message",
			"error", err)
	}

	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil && !message.IsUnknownCharset(err) {
		log.Warnw("could not parse message, using raw content",
			"error", err)
		return "", string(raw)
	}

	subject, err := mr.Header.Subject()
	if err != nil {
		subject = mr.Header.Get("Subject")
	}

	var parts []string
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil && !message.IsUnknownCharset(err) {
			log.Warnw("could not read message part",
				"subject", subject,
				"error", err)
			break
		}
		if p == nil {
			break
		}

		switch p.Header.(type) {
		case *mail.InlineHeader:
			b, err := io.ReadAll(p.Body)
			if err != nil {
				log.Warnw("could not decode message part",
					"subject", subject,
					"error", err)
			}
			parts = append(parts, string(b))
		}
	}

	return subject, strings.Join(parts, "\n")
}
