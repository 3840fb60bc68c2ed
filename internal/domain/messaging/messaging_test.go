package messaging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumech/backend/internal/domain/shared"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func msg(id int64, contact, text string, offset time.Duration, rich bool) Message {
	m := Message{ContactID: contact, Message: text}
	m.ID = id
	m.CreatedAt = t0.Add(offset)
	if rich {
		name := "Ali"
		m.PushName = &name
	}
	return m
}

func ids(ms []Message) []int64 {
	out := make([]int64, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestNewContact(t *testing.T) {
	c, err := NewContact(" +923001234567 ", "Kassim Textile", "Ali", "923001234567@c.us")
	require.NoError(t, err)
	assert.Equal(t, "+923001234567", c.Contact)

	_, err = NewContact("  ", "", "", "")
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestNewMessage(t *testing.T) {
	m, err := NewMessage("abc@c.us", "hello", nil, nil, nil, t0)
	require.NoError(t, err)
	assert.False(t, m.Read)
	assert.False(t, m.Rich())

	_, err = NewMessage("", "hello", nil, nil, nil, t0)
	assert.Error(t, err)
	_, err = NewMessage("abc@c.us", " ", nil, nil, nil, t0)
	assert.Error(t, err)
}

func TestMessage_Rich(t *testing.T) {
	fromMe := false
	assert.True(t, Message{FromMe: &fromMe}.Rich())
	assert.False(t, Message{}.Rich())
}

func TestDedupe(t *testing.T) {
	t.Run("poor copy after rich copy is dropped", func(t *testing.T) {
		out := Dedupe([]Message{
			msg(1, "a", "hi", 0, true),
			msg(2, "a", "hi", 10*time.Second, false),
		})
		assert.Equal(t, []int64{1}, ids(out))
	})

	t.Run("rich copy replaces earlier poor copy", func(t *testing.T) {
		out := Dedupe([]Message{
			msg(2, "a", "hi", 5*time.Second, true),
			msg(1, "a", "hi", 0, false),
		})
		assert.Equal(t, []int64{2}, ids(out))
	})

	t.Run("copies outside the window are kept", func(t *testing.T) {
		out := Dedupe([]Message{
			msg(1, "a", "hi", 0, true),
			msg(2, "a", "hi", 31*time.Second, false),
		})
		assert.Equal(t, []int64{2, 1}, ids(out))
	})

	t.Run("different contacts and texts are independent", func(t *testing.T) {
		out := Dedupe([]Message{
			msg(1, "a", "hi", 0, true),
			msg(2, "b", "hi", time.Second, false),
			msg(3, "a", "bye", 2*time.Second, false),
		})
		assert.Equal(t, []int64{3, 2, 1}, ids(out))
	})

	t.Run("two poor copies are both kept", func(t *testing.T) {
		out := Dedupe([]Message{
			msg(1, "a", "hi", 0, false),
			msg(2, "a", "hi", time.Second, false),
		})
		assert.Equal(t, []int64{2, 1}, ids(out))
	})
}

func TestGroupConversations(t *testing.T) {
	contacts := []Contact{
		{ID: 1, Contact: "Ali", ContactID: "a"},
		{ID: 2, Contact: "Sara", ContactID: "b"},
		{ID: 3, Contact: "No id"},
	}
	read := msg(4, "b", "older", -time.Hour, true)
	read.Read = true
	messages := []Message{
		msg(1, "a", "hi", 0, true),
		msg(2, "a", "hi", 3*time.Second, false),
		msg(3, "x", "stranger", time.Minute, true),
		read,
		msg(5, "a", "second", 2*time.Minute, true),
	}

	convs := GroupConversations(contacts, messages)

	require.Len(t, convs, 2)
	assert.Equal(t, "a", convs[0].Contact.ContactID)
	assert.Equal(t, []int64{5, 1}, ids(convs[0].Messages))
	assert.Equal(t, 2, convs[0].UnreadCount)
	assert.Equal(t, t0.Add(2*time.Minute), convs[0].LastMessageAt)

	assert.Equal(t, "b", convs[1].Contact.ContactID)
	assert.Equal(t, 0, convs[1].UnreadCount)
}
