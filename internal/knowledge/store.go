// Package knowledge provides the fixed medical knowledge base consulted by the
// question dispatcher.
package knowledge

// Field holds one fact entry for a topic: either an ordered list of values or
// a single descriptive string.
type Field struct {
	Values []string
	Text   string
}

// Topic is a structured fact sheet for one medical subject.
type Topic struct {
	ID     string
	Fields map[string]Field
}

// List returns the value list for the named field, or nil if the field is
// absent or holds a single string.
func (t Topic) List(name string) []string {
	return t.Fields[name].Values
}

// Text returns the descriptive string for the named field, or "" if the field
// is absent or holds a list.
func (t Topic) Text(name string) string {
	return t.Fields[name].Text
}

// Store is an immutable mapping from topic name to Topic, populated once at
// construction. No request path mutates it.
type Store struct {
	topics map[string]Topic
	order  []string
}

// NewStore builds the store from the fixed fact table.
func NewStore() *Store {
	s := &Store{topics: make(map[string]Topic)}
	for _, t := range topicTable {
		s.topics[t.ID] = t
		s.order = append(s.order, t.ID)
	}
	return s
}

// Get returns the topic with the given ID.
func (s *Store) Get(id string) (Topic, bool) {
	t, ok := s.topics[id]
	return t, ok
}

// Count returns the number of topics.
func (s *Store) Count() int {
	return len(s.order)
}

// Topics returns topic names in their fixed declaration order.
func (s *Store) Topics() []string {
	return append([]string(nil), s.order...)
}

// TotalEntries returns the number of fields summed across all topics.
func (s *Store) TotalEntries() int {
	total := 0
	for _, t := range s.topics {
		total += len(t.Fields)
	}
	return total
}
