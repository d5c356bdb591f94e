package types

type Mailbox string

const Inbox Mailbox = "INBOX"

// Message is a fetched notification email. Body holds every inline part of
// the message, decoded and concatenated.
type Message struct {
	Uid     uint32
	Subject string
	Body    string
}
