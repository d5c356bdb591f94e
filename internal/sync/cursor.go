package sync

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Philanthropists/phab-email-events/internal/dynamodb"
)

// CursorStore keeps the last seen message id between poller connections.
type CursorStore interface {
	Load(ctx context.Context) (uint32, bool, error)
	Save(ctx context.Context, cursor uint32) error
}

// MemoryCursor lives as long as the process.
type MemoryCursor struct {
	value uint32
	set   bool
}

func (m *MemoryCursor) Load(_ context.Context) (uint32, bool, error) {
	return m.value, m.set, nil
}

func (m *MemoryCursor) Save(_ context.Context, cursor uint32) error {
	m.value = cursor
	m.set = true
	return nil
}

const (
	cursorIdField    = "Id"
	cursorValueField = "LastMessageId"
	DefaultTable     = "phab-email-events"
)

type DynamoCursor struct {
	client dynamodb.Client
	table  string
}

func NewDynamoCursor(client dynamodb.Client, table string) *DynamoCursor {
	if table == "" {
		table = DefaultTable
	}

	return &DynamoCursor{client: client, table: table}
}

func (d *DynamoCursor) key() map[string]dynamodb.AttributeValue {
	return map[string]dynamodb.AttributeValue{
		cursorIdField: dynamodb.NumberValue("1"),
	}
}

func (d *DynamoCursor) Load(ctx context.Context) (uint32, bool, error) {
	item, err := d.client.GetItem(ctx, d.table, d.key())
	if err != nil {
		return 0, false, fmt.Errorf("loading cursor from %s: %w", d.table, err)
	}

	value, ok := item[cursorValueField]
	if !ok {
		return 0, false, nil
	}

	raw, ok := value.(string)
	if !ok {
		return 0, false, fmt.Errorf("%s has unexpected type %T", cursorValueField, value)
	}

	cursor, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("parsing %s [%s]: %w", cursorValueField, raw, err)
	}

	return uint32(cursor), true, nil
}

func (d *DynamoCursor) Save(ctx context.Context, cursor uint32) error {
	expressionAttributeValues := map[string]dynamodb.AttributeValue{
		":r": dynamodb.NumberValue(strconv.FormatUint(uint64(cursor), 10)),
	}

	updateExpression := fmt.Sprintf("set %s = :r", cursorValueField)

	if err := d.client.UpdateItem(ctx, d.table, d.key(), expressionAttributeValues, updateExpression); err != nil {
		return fmt.Errorf("saving cursor to %s: %w", d.table, err)
	}

	return nil
}
