package enumerr

// Tier separates errors the caller opted into from errors it cannot opt out
// of.
type Tier string

const (
	// TierInput indicates an invalid key, value or object. Every operation
	// that reports it has an OrDefault counterpart that does not.
	TierInput Tier = "input"

	// TierDispatch indicates a value reached a handler table with no usable
	// handler for it.
	TierDispatch Tier = "dispatch"
)

// TierForCode returns the tier for a given error code.
func TierForCode(code string) Tier {
	switch code {
	case ErrCodeInvalidKey, ErrCodeInvalidValue, ErrCodeInvalidObject:
		return TierInput
	case ErrCodeUnhandledValue, ErrCodeIncompleteHandlers:
		return TierDispatch
	default:
		return TierInput
	}
}
