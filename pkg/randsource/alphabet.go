package randsource

// AlphabetVersion identifies the alphabet set below.
const AlphabetVersion = "v1"

const (
	UpperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerAlphabet = "abcdefghijklmnopqrstuvwxyz"
	DigitAlphabet = "0123456789"
	// SymbolAlphabet is every printable ASCII punctuation character, space excluded.
	SymbolAlphabet = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Class is a character class.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassUpper
	ClassLower
	ClassSymbol
	ClassDigit
)

func (c Class) String() string {
	switch c {
	case ClassUpper:
		return "upper"
	case ClassLower:
		return "lower"
	case ClassSymbol:
		return "symbol"
	case ClassDigit:
		return "digit"
	default:
		return "unknown"
	}
}

// Alphabet returns the characters of class c, or "" for ClassUnknown.
func (c Class) Alphabet() string {
	switch c {
	case ClassUpper:
		return UpperAlphabet
	case ClassLower:
		return LowerAlphabet
	case ClassSymbol:
		return SymbolAlphabet
	case ClassDigit:
		return DigitAlphabet
	default:
		return ""
	}
}

// ClassOf reports the class b belongs to.
func ClassOf(b byte) Class {
	switch {
	case b >= 'A' && b <= 'Z':
		return ClassUpper
	case b >= 'a' && b <= 'z':
		return ClassLower
	case b >= '0' && b <= '9':
		return ClassDigit
	case b > ' ' && b < 0x7f:
		// Remaining printable ASCII is punctuation.
		return ClassSymbol
	default:
		return ClassUnknown
	}
}

// Classes lists the four classes in concatenation order.
func Classes() []Class {
	return []Class{ClassUpper, ClassLower, ClassSymbol, ClassDigit}
}
