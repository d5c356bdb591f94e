package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Philanthropists/phab-email-events/internal/handler"
	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

func parse(t *testing.T, body string) []types.Event {
	t.Helper()

	recorder := handler.NewRecorder()
	Task{Handler: recorder}.Parse(context.Background(), types.Notification{Id: "T4242"}, body)

	return recorder.Recorded()
}

func TestTaskComment(t *testing.T) {
	events := parse(t, `<div>ivan added a comment.</div><div><div><p>Reproduced on staging</p></div></div>`)

	require.Len(t, events, 1)
	assert.Equal(t, types.TaskComment, events[0].Kind)
	assert.Equal(t, "ivan", *events[0].Actor)
	require.NotNil(t, events[0].Comment)
	assert.Equal(t, "Reproduced on staging", *events[0].Comment)
	assert.Nil(t, events[0].Notification.Description)
}

func TestTaskMove(t *testing.T) {
	events := parse(t, `<div>judy moved this task from Backlog to In Progress on the Sprint board.</div>`)

	require.Len(t, events, 1)
	assert.Equal(t, types.TaskMove, events[0].Kind)
	assert.Equal(t, "judy", *events[0].Actor)
	assert.Nil(t, events[0].Comment)
	assert.Nil(t, events[0].Comments)
}

func TestTaskCommentAndMove(t *testing.T) {
	body := `<div>judy added a comment.</div><div><div><p>Picking this up</p></div></div>` +
		`<div>judy moved this task from Backlog to Doing.</div>`

	events := parse(t, body)

	require.Len(t, events, 2)
	assert.Equal(t, types.TaskComment, events[0].Kind)
	assert.Equal(t, types.TaskMove, events[1].Kind)
}

func TestTaskIgnoresDiffPhrases(t *testing.T) {
	assert.Empty(t, parse(t, `<div>mallory created this revision.</div>`))
}
