package sequence

// MaxExact is the largest index whose Fibonacci value fits in a uint64.
// Every term after it has wrapped around.
const MaxExact = 93

// preallocation cap for Collect, counts can go up to 2^32-1
const maxPrealloc = 4096

// Term is one Fibonacci value paired with its zero-based index
type Term struct {
	Index uint32
	Value uint64
}

// Wrapped reports whether the value of t is F(t.Index) modulo 2^64 rather than the exact value.
func Wrapped(t Term) bool {
	return t.Index > MaxExact
}

// Generate produces the first n terms in order, handing each one to yield as soon as it is computed.
// Generation stops early if yield returns false.
func Generate(n uint32, yield func(Term) bool) {
	var a, b uint64 = 0, 1
	for i := uint32(0); i < n; i++ {
		if !yield(Term{Index: i, Value: a}) {
			return
		}
		// wraps modulo 2^64 once past MaxExact
		a, b = b, a+b
	}
}

// Collect returns the first n terms as a slice. Collect(0) is empty, not nil.
func Collect(n uint32) []Term {
	size := n
	if size > maxPrealloc {
		size = maxPrealloc
	}
	terms := make([]Term, 0, size)
	Generate(n, func(t Term) bool {
		terms = append(terms, t)
		return true
	})
	return terms
}

// Values returns only the values of the first n terms.
func Values(n uint32) []uint64 {
	terms := Collect(n)
	values := make([]uint64, len(terms))
	for i, t := range terms {
		values[i] = t.Value
	}
	return values
}

// At returns the term at index i without keeping the ones before it.
func At(i uint32) Term {
	a, _ := pairAt(i)
	return Term{Index: i, Value: a}
}

// pairAt returns F(i) and F(i+1).
func pairAt(i uint32) (uint64, uint64) {
	var a, b uint64 = 0, 1
	for k := uint32(0); k < i; k++ {
		a, b = b, a+b
	}
	return a, b
}
