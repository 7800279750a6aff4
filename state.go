package mdtint

// StartOfInput is the Last rune of a State that has not consumed anything.
const StartOfInput rune = 0

// MaxHeadingLevel is the deepest ATX heading level.
const MaxHeadingLevel = 6

// State is the active formatting of the document at the current rune. It is
// a plain value: Update returns a new State and never mutates the receiver.
type State struct {
	// HeadingLevel is 1-6 inside a heading line, 0 otherwise.
	HeadingLevel int
	// StarRun counts '*' runes. Other runes do not reset it.
	StarRun int
	Bold    bool
	Italic  bool
	Quote   bool
	// Last is the previously consumed rune, StartOfInput at the beginning.
	Last rune
}

// NewState returns the state before the first rune of a document.
func NewState() State {
	return State{Last: StartOfInput}
}

// Update returns the state after consuming r.
func (s State) Update(r rune) State {
	switch r {
	case '#':
		if s.HeadingLevel < MaxHeadingLevel {
			s.HeadingLevel++
		}
	case '*':
		s = s.star()
	case '>':
		s.Quote = true
	case '\n':
		s.HeadingLevel = 0
		if s.Last == '\n' {
			s.Quote = false
		}
	}
	s.Last = r
	return s
}

// star applies the run-length emphasis rule. Only runs of 1, 2 and 4 change
// bold or italic. A count of 2 reached without a directly preceding '*'
// starts over from zero.
func (s State) star() State {
	s.StarRun++
	if s.StarRun == 2 && s.Last != '*' {
		s.Bold = false
		s.Italic = false
		s.StarRun = 0
	}
	switch s.StarRun {
	case 1:
		s.Italic = true
		s.Bold = false
	case 2:
		s.Italic = false
		s.Bold = true
	case 4:
		s.Bold = false
	}
	return s
}

// Fold threads a State through src in document order and calls fn with the
// state after each rune together with that rune. It returns the final state.
func Fold(src string, fn func(State, rune)) State {
	s := NewState()
	for _, r := range src {
		s = s.Update(r)
		if fn != nil {
			fn(s, r)
		}
	}
	return s
}
