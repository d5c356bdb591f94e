package imap

import (
	"bytes"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-imap/backend/memory"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-imap/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philanthropists/phab-email-events/internal/datasource/imap/types"
)

// the memory backend seeds INBOX with a single message under uid 6
const seededUid = 6

func notification(subject, body string) *bytes.Buffer {
	return bytes.NewBufferString(strings.Join([]string{
		"From: noreply@phabricator.example.com",
		"Subject: " + subject,
		"Content-Type: text/html; charset=UTF-8",
		"",
		body,
	}, "\r\n"))
}

func startServer(t *testing.T, subjects ...string) string {
	t.Helper()

	be := memory.New()
	user, err := be.Login(nil, "username", "password")
	require.NoError(t, err)
	mbox, err := user.GetMailbox("INBOX")
	require.NoError(t, err)

	for _, subject := range subjects {
		require.NoError(t, mbox.CreateMessage(nil, time.Now(), notification(subject, "<div>alice created this revision.</div>")))
	}

	s := server.New(be)
	s.AllowInsecureAuth = true

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = s.Serve(ln)
	}()
	t.Cleanup(func() {
		_ = s.Close()
	})

	return ln.Addr().String()
}

func dialTestServer(t *testing.T, addr string) MailClient {
	t.Helper()

	c, err := client.Dial(addr)
	require.NoError(t, err)

	mc, err := newMailClient(c, "username", "password", types.Inbox)
	require.NoError(t, err)

	return mc
}

func TestMailClientSession(t *testing.T) {
	addr := startServer(t, "[Differential] D1234: Fix bug", "[Maniphest] T4242: Broken login")
	mc := dialTestServer(t, addr)

	ids, err := mc.GetMessageIdsSince(0)
	require.NoError(t, err)
	assert.Equal(t, []uint32{seededUid, seededUid + 1, seededUid + 2}, ids)

	ids, err = mc.GetMessageIdsSince(seededUid + 1)
	require.NoError(t, err)
	assert.Equal(t, []uint32{seededUid + 2}, ids)

	ids, err = mc.GetMessageIdsSince(seededUid + 2)
	require.NoError(t, err)
	assert.Empty(t, ids)

	msgs, err := mc.GetMessages([]uint32{seededUid + 2, seededUid + 1})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, uint32(seededUid+1), msgs[0].Uid)
	assert.Equal(t, "[Differential] D1234: Fix bug", msgs[0].Subject)
	assert.Equal(t, "<div>alice created this revision.</div>", msgs[0].Body)
	assert.Equal(t, uint32(seededUid+2), msgs[1].Uid)
	assert.Equal(t, "[Maniphest] T4242: Broken login", msgs[1].Subject)

	assert.NoError(t, mc.Logout())
}

func TestMailClientNoMessagesToFetch(t *testing.T) {
	mc := dialTestServer(t, startServer(t))

	msgs, err := mc.GetMessages(nil)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	assert.NoError(t, mc.Logout())
}

func TestMailClientBadCredentials(t *testing.T) {
	addr := startServer(t)

	c, err := client.Dial(addr)
	require.NoError(t, err)

	_, err = newMailClient(c, "username", "wrong", types.Inbox)
	assert.Error(t, err)
}

func TestMailClientUnknownMailbox(t *testing.T) {
	addr := startServer(t)

	c, err := client.Dial(addr)
	require.NoError(t, err)

	_, err = newMailClient(c, "username", "password", types.Mailbox("Archive"))
	assert.Error(t, err)
}
