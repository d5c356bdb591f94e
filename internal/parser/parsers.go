package parser

import (
	"regexp"
	"strings"

	"github.com/Philanthropists/phab-email-events/internal/parser/diff"
	"github.com/Philanthropists/phab-email-events/internal/parser/task"
	"github.com/Philanthropists/phab-email-events/internal/sync/common"
	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

var idRegexp = regexp.MustCompile(`(?P<id>[DT][0-9]{4,})`)

// ParseSubject extracts the revision or task id and its description from an
// email subject. ok is false when the subject carries no id.
func ParseSubject(subject string) (types.Notification, bool) {
	id, ok := common.ExtractField(subject, idRegexp, "id")
	if !ok {
		return types.Notification{}, false
	}

	n := types.Notification{Id: id}

	prefix := id + ": "
	if i := strings.Index(subject, prefix); i >= 0 {
		desc := subject[i+len(prefix):]
		n.Description = &desc
	}

	return n, true
}

type Parsers struct {
	diff types.ParserDelegate
	task types.ParserDelegate
}

func GetParsers(handler types.Handler) Parsers {
	return Parsers{
		diff: diff.Diff{Handler: handler},
		task: task.Task{Handler: handler},
	}
}

// For returns the parser responsible for the notification's id family.
func (p Parsers) For(n types.Notification) types.ParserDelegate {
	if n.IsTask() {
		return p.task
	}

	return p.diff
}
