package password

import "errors"

var (
	// ErrInvalidArgument is returned when required input is missing.
	ErrInvalidArgument = errors.New("password: invalid argument")

	// ErrLengthOverflow is the cause of a failure when the quotas sum past math.MaxInt.
	ErrLengthOverflow = errors.New("password: requested length overflows int")

	// ErrServiceFailure matches every *ServiceError.
	ErrServiceFailure = errors.New("password: failed to generate a password")
)

// ServiceError reports a failed generation. Cause is kept for diagnostics.
type ServiceError struct {
	Cause error
}

func (e *ServiceError) Error() string {
	if e.Cause == nil {
		return ErrServiceFailure.Error()
	}
	return ErrServiceFailure.Error() + ": " + e.Cause.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrServiceFailure) true for any *ServiceError.
func (e *ServiceError) Is(target error) bool {
	return target == ErrServiceFailure
}
