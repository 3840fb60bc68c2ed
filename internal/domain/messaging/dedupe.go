package messaging

import (
	"sort"
	"time"
)

// DuplicateWindow is how close two copies of a message must be to count as one
const DuplicateWindow = 30 * time.Second

func withinWindow(a, b time.Time) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= DuplicateWindow
}

// Dedupe drops metadata-less copies of a message that arrive within
// DuplicateWindow of a rich copy with the same contact and text.
// A rich copy arriving after a poor one replaces it. The result is newest
// first.
func Dedupe(messages []Message) []Message {
	sorted := make([]Message, len(messages))
	copy(sorted, messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	out := make([]Message, 0, len(sorted))
	lastIndex := make(map[string]int)
	lastRich := make(map[string]time.Time)

	for _, m := range sorted {
		key := m.ContactID + "|" + m.Message
		rich := m.Rich()

		if at, ok := lastRich[key]; ok && !rich && withinWindow(m.CreatedAt, at) {
			continue
		}

		if idx, ok := lastIndex[key]; ok && rich {
			existing := out[idx]
			if !existing.Rich() && withinWindow(m.CreatedAt, existing.CreatedAt) {
				out[idx] = m
				lastRich[key] = m.CreatedAt
				continue
			}
		}

		out = append(out, m)
		lastIndex[key] = len(out) - 1
		if rich {
			lastRich[key] = m.CreatedAt
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
