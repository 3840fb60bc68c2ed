package messaging

import (
	"sort"
	"time"
)

// Conversation is the message thread of one known contact
type Conversation struct {
	Contact       Contact
	Messages      []Message
	UnreadCount   int
	LastMessageAt time.Time
}

// GroupConversations threads deduplicated messages by contact. Messages
// from numbers missing in contacts are left out. Threads are ordered by
// latest activity.
func GroupConversations(contacts []Contact, messages []Message) []Conversation {
	known := make(map[string]Contact, len(contacts))
	for _, c := range contacts {
		if c.ContactID != "" {
			known[c.ContactID] = c
		}
	}

	byContact := make(map[string]*Conversation)
	for _, m := range Dedupe(messages) {
		c, ok := known[m.ContactID]
		if !ok {
			continue
		}
		conv, ok := byContact[m.ContactID]
		if !ok {
			conv = &Conversation{Contact: c}
			byContact[m.ContactID] = conv
		}
		conv.Messages = append(conv.Messages, m)
		if !m.Read {
			conv.UnreadCount++
		}
		if m.CreatedAt.After(conv.LastMessageAt) {
			conv.LastMessageAt = m.CreatedAt
		}
	}

	out := make([]Conversation, 0, len(byContact))
	for _, conv := range byContact {
		out = append(out, *conv)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastMessageAt.Equal(out[j].LastMessageAt) {
			return out[i].Contact.ContactID < out[j].Contact.ContactID
		}
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out
}
