// Package randsource provides class-scoped sampling of password characters and
// unbiased shuffling on top of a cryptographically secure random source.
//
// A single *Crypto is meant to be created once per process and shared by all
// callers. It holds no mutable state; concurrent use is safe whenever the
// underlying reader is safe for concurrent use, which crypto/rand.Reader is.
//
// # Usage
//
//	src := randsource.New()
//
//	upper, err := src.Upper(4)   // e.g. "QZKA"
//	digits, err := src.Digits(2) // e.g. "07"
//
//	mixed, err := src.Shuffle(append(upper, digits...))
//
// # Alphabets
//
// The class alphabets are ASCII only and versioned by AlphabetVersion:
//
//	upper:   A-Z
//	lower:   a-z
//	digits:  0-9
//	symbols: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
//
// Any change to an alphabet must bump AlphabetVersion.
//
// # Errors
//
// Failures to read entropy are returned wrapped with ErrEntropyUnavailable.
// There is no fallback to math/rand.
package randsource
