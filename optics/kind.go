package optics

// Kind is the capability of an optic. Higher kinds have more foci and fewer
// guarantees.
type Kind uint8

const (
	KindLens Kind = iota
	KindPrism
	KindTraversal
)

// Join returns the kind of a composition of k and other.
func (k Kind) Join(other Kind) Kind {
	if other > k {
		return other
	}
	return k
}

func (k Kind) String() string {
	switch k {
	case KindLens:
		return "lens"
	case KindPrism:
		return "prism"
	case KindTraversal:
		return "traversal"
	default:
		return "unknown"
	}
}
