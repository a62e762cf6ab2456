package worddist

import "fmt"

// NormType selects which length a normalized ("percentage") limit is scaled
// against when it is converted into an absolute cost ceiling, and which of
// two candidate token lengths wins when the DP tracks a token's normalized
// length across an edit.
type NormType int

const (
	// NormMax scales by the longer of the two operand lengths.
	NormMax NormType = iota
	// NormMin scales by the shorter of the two operand lengths.
	NormMin
	// NormFirst scales by the length of the first ("a") operand only,
	// which breaks the symmetry distance(a, b) == distance(b, a).
	NormFirst
)

func (t NormType) String() string {
	switch t {
	case NormMax:
		return "max"
	case NormMin:
		return "min"
	case NormFirst:
		return "first"
	default:
		return fmt.Sprintf("NormType(%d)", int(t))
	}
}

// ParseNormType parses the CLI/config spelling of a NormType ("max", "min",
// "first"). An unrecognized value is a configuration error: it is fatal to
// construction, never discovered mid-computation.
func ParseNormType(s string) (NormType, error) {
	switch s {
	case "max":
		return NormMax, nil
	case "min":
		return NormMin, nil
	case "first":
		return NormFirst, nil
	default:
		return 0, fmt.Errorf("worddist: unknown normType %q (want max, min, or first)", s)
	}
}

// pick applies the two-length reduction implied by t: max, min, or "first
// only" (which ignores l2 entirely).
func (t NormType) pick(l1, l2 float64) float64 {
	switch t {
	case NormMax:
		if l1 > l2 {
			return l1
		}
		return l2
	case NormMin:
		if l1 < l2 {
			return l1
		}
		return l2
	case NormFirst:
		return l1
	default:
		panic(fmt.Sprintf("worddist: unhandled NormType %d", int(t)))
	}
}
