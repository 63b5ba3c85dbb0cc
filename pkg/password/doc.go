// Package password generates random passwords from per-class character quotas.
//
// A Generator composes a password from four quotas (upper case letters,
// lower case letters, symbols and digits), sampling every character from a
// randsource.Source and mixing the result so the class blocks leave no trace
// in the final order.
//
// # Usage
//
//	gen, err := password.New(randsource.New(), password.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	pw, err := gen.Generate(ctx, &password.Parameters{
//		UpperCase: 2,
//		LowerCase: 6,
//		Symbols:   2,
//		Numbers:   2,
//	})
//
// # Quotas
//
// Negative quotas are clamped to zero without an error. When every quota is
// zero the result is the empty string and a nil error. The generated password
// always has exactly UpperCase+LowerCase+Symbols+Numbers characters after
// clamping, with exactly that many characters of each class.
//
// # Errors
//
// Two kinds of failure are reported:
//
//   - ErrInvalidArgument: params is nil. Returned before any randomness is used.
//   - *ServiceError: anything that went wrong while generating, including
//     entropy failures, panics inside the source and a context that was already
//     done. errors.Is(err, ErrServiceFailure) matches it and errors.Unwrap
//     returns the original cause.
//
// Failures are never retried and partial passwords are never returned.
//
// # Concurrency
//
// Generator has no mutable state. A single instance, built around a single
// shared Source, serves any number of concurrent callers.
package password
