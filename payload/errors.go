package payload

import "fmt"

// InvalidLength rejects a buffer whose total length does not match the
// fixed-offset record it claims to be, truncated and oversized alike.
type InvalidLength struct {
	Expected int
	Got      int
}

var _ error = InvalidLength{}

func (e InvalidLength) Error() string {
	return fmt.Sprintf("invalid payload length: expected %d bytes, got %d", e.Expected, e.Got)
}

// InvalidContext rejects an unrecognized discriminant byte.
type InvalidContext struct {
	Context uint8
}

var _ error = InvalidContext{}

func (e InvalidContext) Error() string {
	return fmt.Sprintf("invalid payload context: 0x%02x", e.Context)
}

// InvalidIdentifierLength rejects an identifier slot whose declared value
// length exceeds the 64 bytes the slot can hold.
type InvalidIdentifierLength struct {
	Length uint8
}

var _ error = InvalidIdentifierLength{}

func (e InvalidIdentifierLength) Error() string {
	return fmt.Sprintf("invalid identifier length: %d", e.Length)
}

// InvalidIdentifierPadding rejects an identifier slot carrying non-zero
// bytes outside its declared value.
type InvalidIdentifierPadding struct{}

var _ error = InvalidIdentifierPadding{}

func (e InvalidIdentifierPadding) Error() string {
	return "invalid identifier padding: non-zero bytes outside declared value"
}

// InvalidCalldataLength rejects a calldata section too short to hold the
// mandatory target slot.
type InvalidCalldataLength struct {
	Length uint16
}

var _ error = InvalidCalldataLength{}

func (e InvalidCalldataLength) Error() string {
	return fmt.Sprintf("invalid calldata length: %d (shorter than the %d-byte target slot)", e.Length, Bytes65Len)
}
