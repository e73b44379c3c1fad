package types

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// U256Len is the wire length of a U256 in bytes.
const U256Len = 32

// U256 is an unsigned 256-bit integer in big-endian byte order. It is the
// chain-agnostic numeric domain of the Catalyst wire format: swap units and
// all wire-scale amounts are U256. It is marshalled to and from JSON as a
// string-encoded decimal integer (matching Uint64/Uint128).
type U256 [U256Len]byte

// NewU256 creates a U256 from a byte slice. Returns an error if the slice
// length is not U256Len.
func NewU256(b []byte) (U256, error) {
	if len(b) != U256Len {
		return U256{}, fmt.Errorf("got wrong number of bytes for U256")
	}
	var u U256
	copy(u[:], b)
	return u, nil
}

// NewU256FromUint64 creates a U256 holding a small value.
func NewU256FromUint64(v uint64) U256 {
	var u U256
	new(big.Int).SetUint64(v).FillBytes(u[:])
	return u
}

// NewU256FromBig creates a U256 from a big.Int. It errors when the value is
// negative or does not fit in 256 bits.
func NewU256FromBig(v *big.Int) (U256, error) {
	if v.Sign() < 0 || v.BitLen() > 256 {
		return U256{}, OverflowError{Value: v.String(), TargetType: "U256"}
	}
	var u U256
	v.FillBytes(u[:])
	return u, nil
}

// Big returns the value as a big.Int.
func (u U256) Big() *big.Int {
	return new(big.Int).SetBytes(u[:])
}

// Bytes returns the 32-byte big-endian representation.
func (u U256) Bytes() []byte {
	return u[:]
}

func (u U256) String() string {
	return u.Big().String()
}

// IsZero returns true for the zero value.
func (u U256) IsZero() bool {
	return u == U256{}
}

// Uint128 converts the value into the local amount domain. It errors when
// the value exceeds 2^128-1, which is a real, expected failure mode: hostile
// or buggy counterparties may encode out-of-range amounts.
func (u U256) Uint128() (Uint128, error) {
	return NewUint128FromBig(u.Big())
}

func (u U256) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Big().String())
}

func (u *U256) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal %s into U256, expected string-encoded integer", data)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into U256, failed to parse integer", data)
	}
	parsed, err := NewU256FromBig(v)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
