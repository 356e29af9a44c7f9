// Package book models the chapter sequence of a documentation book:
// a fixed, ordered list of chapters addressed by stable ids.
package book

// Chapter is one unit of documentation content.
type Chapter struct {
	ID       string
	Title    string
	File     string // source file key; empty means the chapter has no mapping
	Keywords string // static keyword content used by search
}

// Sequence is the fixed, ordered chapter list that defines next/previous
// semantics. It is immutable after construction.
type Sequence struct {
	chapters []Chapter
	byID     map[string]int
}

// NewSequence builds a Sequence from the given chapters. Later duplicates
// of an id are ignored; config validation rejects them upfront.
func NewSequence(chapters []Chapter) *Sequence {
	s := &Sequence{
		chapters: make([]Chapter, 0, len(chapters)),
		byID:     make(map[string]int, len(chapters)),
	}
	for _, ch := range chapters {
		if _, ok := s.byID[ch.ID]; ok {
			continue
		}
		s.byID[ch.ID] = len(s.chapters)
		s.chapters = append(s.chapters, ch)
	}
	return s
}

// Len returns the number of chapters.
func (s *Sequence) Len() int { return len(s.chapters) }

// Chapters returns a copy of the ordered chapter list.
func (s *Sequence) Chapters() []Chapter {
	out := make([]Chapter, len(s.chapters))
	copy(out, s.chapters)
	return out
}

// IDs returns the ordered chapter ids.
func (s *Sequence) IDs() []string {
	ids := make([]string, len(s.chapters))
	for i, ch := range s.chapters {
		ids[i] = ch.ID
	}
	return ids
}

// Contains reports whether id is a member of the sequence.
func (s *Sequence) Contains(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Get returns the chapter with the given id.
func (s *Sequence) Get(id string) (Chapter, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Chapter{}, false
	}
	return s.chapters[i], true
}

// Index returns the position of id within the sequence, or -1.
func (s *Sequence) Index(id string) int {
	i, ok := s.byID[id]
	if !ok {
		return -1
	}
	return i
}

// First returns the first chapter of the sequence.
func (s *Sequence) First() (Chapter, bool) {
	if len(s.chapters) == 0 {
		return Chapter{}, false
	}
	return s.chapters[0], true
}

// Next returns the chapter after id. It returns false at the end of the
// sequence or when id is unknown; there is no wraparound.
func (s *Sequence) Next(id string) (Chapter, bool) {
	i, ok := s.byID[id]
	if !ok || i+1 >= len(s.chapters) {
		return Chapter{}, false
	}
	return s.chapters[i+1], true
}

// Previous returns the chapter before id. It returns false at the start of
// the sequence or when id is unknown; there is no wraparound.
func (s *Sequence) Previous(id string) (Chapter, bool) {
	i, ok := s.byID[id]
	if !ok || i-1 < 0 {
		return Chapter{}, false
	}
	return s.chapters[i-1], true
}
