package refpool

import "fmt"

type constError string

func (errStr constError) Error() string { return string(errStr) }

const (
	// ErrMaterializationFailed wraps a failure from a Recipe's Build
	// method. The counter is left in its pre-call state: no firm count
	// increment, object absent.
	ErrMaterializationFailed = constError("refpool: materialization failed")

	// ErrDynamicCastFailed is returned by CastFirmDynamic when the
	// runtime type of the held object does not satisfy the requested
	// type. The source handle is left untouched.
	ErrDynamicCastFailed = constError("refpool: dynamic cast failed")

	// ErrNullHandle is returned when an upgrade (LazyHandle.Load) or a
	// dynamic cast is attempted on a handle that was never bound to a
	// counter. Dereferencing a null FirmHandle (Get) panics with this
	// error's message instead of returning it.
	ErrNullHandle = constError("refpool: operation on null handle")

	// ErrPoolNotEmpty is returned by Close when counters still exist,
	// i.e. some handle still references the pool.
	ErrPoolNotEmpty = constError("refpool: pool closed with live counters")
)

func materializationError(recipeDescription string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrMaterializationFailed, recipeDescription, cause)
}

func dynamicCastError(from, to string) error {
	return fmt.Errorf("%w: %s is not %s", ErrDynamicCastFailed, from, to)
}

func poolNotEmptyError(live int) error {
	return fmt.Errorf("%w: %d counter(s) still referenced", ErrPoolNotEmpty, live)
}
