package session

import (
	"sort"
)

// Message levels, rendered as alert classes by the base template.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Message is a one-shot flash message shown on the next rendered page.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Session is the per-visitor state kept between requests: the shopping bag and pending messages.
type Session struct {
	ID       string            `json:"id"`
	Bag      map[int64]int     `json:"bag"`
	Messages []Message         `json:"messages"`
	Extra    map[string]string `json:"extra,omitempty"`

	modified bool
	isNew    bool
}

// New returns an empty session with the given id.
func New(id string) *Session {
	return &Session{
		ID:    id,
		Bag:   make(map[int64]int),
		isNew: true,
	}
}

// Modified reports whether the session must be written back to the store.
func (s *Session) Modified() bool {
	return s.modified
}

// IsNew reports whether the session was created during this request.
func (s *Session) IsNew() bool {
	return s.isNew
}

// AddMessage queues a flash message.
func (s *Session) AddMessage(level, text string) {
	s.Messages = append(s.Messages, Message{Level: level, Text: text})
	s.modified = true
}

// PopMessages returns the queued messages and clears them.
func (s *Session) PopMessages() []Message {
	if len(s.Messages) == 0 {
		return nil
	}
	msgs := s.Messages
	s.Messages = nil
	s.modified = true
	return msgs
}

// Quantity returns the bag quantity for a book, zero when absent.
func (s *Session) Quantity(bookID int64) int {
	return s.Bag[bookID]
}

// SetQuantity sets the bag quantity for a book. A quantity <= 0 removes it.
func (s *Session) SetQuantity(bookID int64, qty int) {
	if s.Bag == nil {
		s.Bag = make(map[int64]int)
	}
	if qty <= 0 {
		delete(s.Bag, bookID)
	} else {
		s.Bag[bookID] = qty
	}
	s.modified = true
}

// RemoveItem drops a book from the bag and reports whether it was present.
func (s *Session) RemoveItem(bookID int64) bool {
	if _, ok := s.Bag[bookID]; !ok {
		return false
	}
	delete(s.Bag, bookID)
	s.modified = true
	return true
}

// ClearBag empties the bag.
func (s *Session) ClearBag() {
	s.Bag = make(map[int64]int)
	s.modified = true
}

// BagBookIDs returns the ids in the bag in ascending order.
func (s *Session) BagBookIDs() []int64 {
	ids := make([]int64, 0, len(s.Bag))
	for id := range s.Bag {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ItemCount is the total number of copies in the bag.
func (s *Session) ItemCount() int {
	n := 0
	for _, qty := range s.Bag {
		n += qty
	}
	return n
}

// Set stores a small string value, such as the save_info checkbox state.
func (s *Session) Set(key, value string) {
	if s.Extra == nil {
		s.Extra = make(map[string]string)
	}
	s.Extra[key] = value
	s.modified = true
}

// Get returns a value stored with Set.
func (s *Session) Get(key string) string {
	return s.Extra[key]
}
