package mapper

// Alphabet assigns dense integer ids to symbols in order of first use.
// The zero value is an empty, usable alphabet.
type Alphabet struct {
	ids     map[rune]int
	symbols []rune
}

// NewAlphabet returns an alphabet containing symbols in first-use order.
func NewAlphabet(symbols ...rune) *Alphabet {
	a := &Alphabet{}
	for _, s := range symbols {
		a.Add(s)
	}

	return a
}

// Add registers s if unseen and returns its id.
func (a *Alphabet) Add(s rune) int {
	if a.ids == nil {
		a.ids = make(map[rune]int)
	}
	if id, ok := a.ids[s]; ok {
		return id
	}
	id := len(a.symbols)
	a.ids[s] = id
	a.symbols = append(a.symbols, s)

	return id
}

// AddString registers every rune of s in order.
func (a *Alphabet) AddString(s string) {
	for _, r := range s {
		a.Add(r)
	}
}

// ID returns the id of s and whether s is known.
func (a *Alphabet) ID(s rune) (int, bool) {
	id, ok := a.ids[s]

	return id, ok
}

// Len reports the alphabet cardinality.
func (a *Alphabet) Len() int { return len(a.symbols) }

// Symbols returns the symbols in id order.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)

	return out
}
