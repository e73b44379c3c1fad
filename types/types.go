package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
)

// Uint64 is a wrapper for uint64, but it is marshalled to and from JSON as a string
type Uint64 uint64

func (u Uint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

func (u *Uint64) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal %s into Uint64, expected string-encoded integer", data)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Uint64, failed to parse integer", data)
	}
	*u = Uint64(v)
	return nil
}

// maxUint128 is 2^128 - 1, the largest value representable as a Uint128.
var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Uint128 is an unsigned 128-bit integer, the native amount type of the
// local chain. Like Uint64 it is marshalled to and from JSON as a
// string-encoded decimal integer.
type Uint128 struct {
	i big.Int
}

// NewUint128 creates a Uint128 from a uint64.
func NewUint128(v uint64) Uint128 {
	var u Uint128
	u.i.SetUint64(v)
	return u
}

// NewUint128FromBig creates a Uint128 from a big.Int. It errors when the
// value is negative or exceeds 2^128-1. This is the expected failure mode
// when converting wire-scale (256-bit) amounts into the local domain.
func NewUint128FromBig(v *big.Int) (Uint128, error) {
	if v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return Uint128{}, OverflowError{Value: v.String(), TargetType: "Uint128"}
	}
	var u Uint128
	u.i.Set(v)
	return u, nil
}

// Big returns a copy of the underlying integer.
func (u Uint128) Big() *big.Int {
	return new(big.Int).Set(&u.i)
}

func (u Uint128) String() string {
	return u.i.String()
}

// IsZero returns true for the zero value.
func (u Uint128) IsZero() bool {
	return u.i.Sign() == 0
}

// Equal reports whether two Uint128 hold the same value.
func (u Uint128) Equal(other Uint128) bool {
	return u.i.Cmp(&other.i) == 0
}

func (u Uint128) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.i.String())
}

func (u *Uint128) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal %s into Uint128, expected string-encoded integer", data)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into Uint128, failed to parse integer", data)
	}
	parsed, err := NewUint128FromBig(v)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// HumanAddress is a printable (typically bech32 encoded) address string.
type HumanAddress = string

// CanonicalAddress uses standard base64 encoding, just use it as a label for developers
type CanonicalAddress = []byte
