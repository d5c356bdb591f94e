package sync

import (
	"github.com/Philanthropists/phab-email-events/internal/datasource/imap"
	imaptypes "github.com/Philanthropists/phab-email-events/internal/datasource/imap/types"
)

// GetNewMessages fetches every message newer than cursor and returns them
// together with the highest id listed.
func GetNewMessages(mailClient imap.MailClient, cursor uint32) ([]imaptypes.Message, uint32, error) {
	ids, err := mailClient.GetMessageIdsSince(cursor)
	if err != nil {
		return nil, cursor, err
	}

	if len(ids) == 0 {
		return nil, cursor, nil
	}

	msgs, err := mailClient.GetMessages(ids)
	if err != nil {
		return nil, cursor, err
	}

	return msgs, maxId(ids, cursor), nil
}

func maxId(ids []uint32, floor uint32) uint32 {
	max := floor
	for _, id := range ids {
		if id > max {
			max = id
		}
	}

	return max
}
