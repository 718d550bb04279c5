package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// QueueList is an ordered set of queues keyed by mode key.
// It encodes as a JSON object whose members keep the list order,
// so panels render their selectors in the order staff created them.
type QueueList []*Queue

// Get returns the queue stored under the mode key
func (l QueueList) Get(modeKey string) (*Queue, bool) {
	for _, q := range l {
		if q.Key == modeKey {
			return q, true
		}
	}
	return nil, false
}

// Keys returns the mode keys in order
func (l QueueList) Keys() []string {
	keys := make([]string, 0, len(l))
	for _, q := range l {
		keys = append(keys, q.Key)
	}
	return keys
}

// Upsert creates the queue or updates label and capacity of an existing one.
// Participants of an existing queue are left untouched.
// It reports whether a new queue was created.
func (l *QueueList) Upsert(modeKey, label string, capacity int) (*Queue, bool) {
	if q, ok := l.Get(modeKey); ok {
		q.Label = label
		q.Capacity = capacity
		return q, false
	}
	q := &Queue{
		Key:          modeKey,
		Label:        label,
		Capacity:     capacity,
		Participants: []string{},
	}
	*l = append(*l, q)
	return q, true
}

// MarshalJSON writes the queues as an object in list order
func (l QueueList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, q := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(q.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		out := *q
		if out.Participants == nil {
			out.Participants = []string{}
		}
		value, err := json.Marshal(&out)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal queue %s: %w", q.Key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of queues, keeping member order
func (l *QueueList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("queues must be a JSON object, got %v", tok)
	}

	list := QueueList{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected queue key %v", tok)
		}

		var q Queue
		if err := dec.Decode(&q); err != nil {
			return fmt.Errorf("failed to unmarshal queue %s: %w", key, err)
		}
		q.Key = key
		if q.Participants == nil {
			q.Participants = []string{}
		}

		// A repeated key replaces the earlier entry, as a plain map would.
		if existing, found := list.Get(key); found {
			*existing = q
			continue
		}
		list = append(list, &q)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*l = list
	return nil
}
