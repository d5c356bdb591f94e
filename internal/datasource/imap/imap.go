package imap

import (
	"sort"

	"github.com/Philanthropists/phab-email-events/internal/datasource/imap/types"
	"github.com/Philanthropists/phab-email-events/internal/logger"
	_imap "github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/pkg/errors"
)

type MailClient interface {
	// GetMessageIdsSince returns the UIDs greater than cursor, ascending.
	GetMessageIdsSince(cursor uint32) ([]uint32, error)
	GetMessages(ids []uint32) ([]types.Message, error)
	Logout() error
}

func GetMailClient(addr, username, password string, mailbox types.Mailbox) (MailClient, error) {
	emailClient, err := client.DialTLS(addr, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %s", addr)
	}

	return newMailClient(emailClient, username, password, mailbox)
}

func newMailClient(emailClient *client.Client, username, password string, mailbox types.Mailbox) (MailClient, error) {
	if err := emailClient.Login(username, password); err != nil {
		_ = emailClient.Logout()
		return nil, errors.Wrapf(err, "logging in as %s", username)
	}

	if _, err := emailClient.Select(string(mailbox), true); err != nil {
		_ = emailClient.Logout()
		return nil, errors.Wrapf(err, "selecting mailbox %s", mailbox)
	}

	return &mailClientImpl{client: emailClient}, nil
}

type mailClientImpl struct {
	client *client.Client
}

func (m mailClientImpl) GetMessageIdsSince(cursor uint32) ([]uint32, error) {
	seqset := new(_imap.SeqSet)
	seqset.AddRange(cursor+1, 0)

	criteria := _imap.NewSearchCriteria()
	criteria.Uid = seqset

	ids, err := m.client.UidSearch(criteria)
	if err != nil {
		return nil, errors.Wrap(err, "searching messages")
	}

	return idsSince(ids, cursor), nil
}

// idsSince drops ids not above cursor. "n:*" always matches the highest UID,
// even when it is below n.
func idsSince(ids []uint32, cursor uint32) []uint32 {
	var newIds []uint32
	for _, id := range ids {
		if id > cursor {
			newIds = append(newIds, id)
		}
	}

	sort.Slice(newIds, func(i, j int) bool { return newIds[i] < newIds[j] })

	return newIds
}

func (m mailClientImpl) GetMessages(ids []uint32) ([]types.Message, error) {
	log := logger.GetLogger()
	if len(ids) == 0 {
		return nil, nil
	}

	seqset := new(_imap.SeqSet)
	seqset.AddNum(ids...)

	messages := make(chan *_imap.Message, 10)
	done := make(chan error, 1)

	var section _imap.BodySectionName
	items := []_imap.FetchItem{section.FetchItem(), _imap.FetchUid}
	go func() {
		done <- m.client.UidFetch(seqset, items, messages)
	}()

	var fetched []types.Message
	for msg := range messages {
		body := msg.GetBody(&section)
		if body == nil {
			log.Warnw("message without body",
				"uid", msg.Uid)
			continue
		}

		subject, text := getMessageContent(body)
		fetched = append(fetched, types.Message{
			Uid:     msg.Uid,
			Subject: subject,
			Body:    text,
		})
	}

	if err := <-done; err != nil {
		return nil, errors.Wrap(err, "fetching messages")
	}

	sort.Slice(fetched, func(i, j int) bool { return fetched[i].Uid < fetched[j].Uid })

	return fetched, nil
}

func (m mailClientImpl) Logout() error {
	if err := m.client.Close(); err != nil {
		logger.GetLogger().Debugw("could not close mailbox",
			"error", err)
	}

	if err := m.client.Logout(); err != nil {
		return errors.Wrap(err, "logging out")
	}

	return nil
}
