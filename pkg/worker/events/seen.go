package events

// SeenSet holds ids of every event observed by one Stream. It lives as long as the Stream and is never
// persisted: a new process starts with an empty set.
type SeenSet struct {
	ids map[string]struct{}
}

func NewSeenSet() *SeenSet {
	return &SeenSet{
		ids: map[string]struct{}{},
	}
}

func (s SeenSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Add returns false if id was already in the set.
func (s *SeenSet) Add(id string) bool {
	if s.Has(id) {
		return false
	}

	s.ids[id] = struct{}{}
	return true
}

func (s SeenSet) Len() int {
	return len(s.ids)
}
