package password

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/passwords/pkg/randsource"
)

// Parameters holds the number of characters requested from each class.
type Parameters struct {
	UpperCase int `json:"upper_case"`
	LowerCase int `json:"lower_case"`
	Symbols   int `json:"symbols"`
	Numbers   int `json:"numbers"`
}

// Normalize returns a copy with every negative quota clamped to zero.
func (p Parameters) Normalize() Parameters {
	return Parameters{
		UpperCase: max(0, p.UpperCase),
		LowerCase: max(0, p.LowerCase),
		Symbols:   max(0, p.Symbols),
		Numbers:   max(0, p.Numbers),
	}
}

// Total is the length of the password p describes, saturated at math.MaxInt.
func (p Parameters) Total() int {
	n, err := p.Length()
	if err != nil {
		return math.MaxInt
	}
	return n
}

// Length is the length of the password p describes. It fails with
// ErrLengthOverflow when the quotas do not fit in an int.
func (p Parameters) Length() (int, error) {
	n := p.Normalize()
	sum := 0
	for _, q := range []int{n.UpperCase, n.LowerCase, n.Symbols, n.Numbers} {
		if q > math.MaxInt-sum {
			return 0, fmt.Errorf("%w: quotas %+v", ErrLengthOverflow, n)
		}
		sum += q
	}
	return sum, nil
}

// Quota returns the normalized quota for class.
func (p Parameters) Quota(class randsource.Class) int {
	n := p.Normalize()
	switch class {
	case randsource.ClassUpper:
		return n.UpperCase
	case randsource.ClassLower:
		return n.LowerCase
	case randsource.ClassSymbol:
		return n.Symbols
	case randsource.ClassDigit:
		return n.Numbers
	default:
		return 0
	}
}
