// Package payload implements the Catalyst V1 packet codec: the fixed-offset
// binary record exchanged between chains for cross-chain asset and liquidity
// swaps. The codec is purely functional; address formats and host state are
// out of its scope.
package payload

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/catalystdao/catalyst-ibc-interface/types"
)

// Payload discriminants (first byte on the wire).
const (
	ContextAssetSwap     uint8 = 0x00
	ContextLiquiditySwap uint8 = 0x01
)

// Bytes65Len is the wire size of an identifier slot: one length byte
// followed by 64 bytes of right-aligned value.
const Bytes65Len = 65

// Common header offsets. All multi-byte integers are big-endian.
const (
	contextPos   = 0
	fromVaultPos = 1
	toVaultPos   = fromVaultPos + Bytes65Len
	toAccountPos = toVaultPos + Bytes65Len
	unitsPos     = toAccountPos + Bytes65Len
	headerLen    = unitsPos + types.U256Len
)

// Asset-swap tail offsets.
const (
	toAssetIndexPos  = headerLen
	minOutPos        = toAssetIndexPos + 1
	assetAmountPos   = minOutPos + types.U256Len
	fromAssetPos     = assetAmountPos + types.U256Len
	assetBlockNumPos = fromAssetPos + Bytes65Len
	assetCDLenPos    = assetBlockNumPos + 4
	assetSwapLen     = assetCDLenPos + 2
)

// Liquidity-swap tail offsets.
const (
	minVaultTokensPos    = headerLen
	minReferenceAssetPos = minVaultTokensPos + types.U256Len
	liquidityAmountPos   = minReferenceAssetPos + types.U256Len
	liquidityBlockNumPos = liquidityAmountPos + types.U256Len
	liquidityCDLenPos    = liquidityBlockNumPos + 4
	liquiditySwapLen     = liquidityCDLenPos + 2
)

// Bytes65 is one identifier slot of the wire format: vault addresses,
// account addresses and asset identifiers all travel in this shape. The
// first byte holds the value length n (0 <= n <= 64); the value occupies the
// last n of the following 64 bytes.
type Bytes65 [Bytes65Len]byte

// NewBytes65 creates a slot from a raw identifier. Returns an error if the
// identifier is longer than 64 bytes.
func NewBytes65(b []byte) (Bytes65, error) {
	if len(b) > Bytes65Len-1 {
		return Bytes65{}, fmt.Errorf("identifier of %d bytes does not fit a 65-byte slot", len(b))
	}
	var out Bytes65
	out[0] = uint8(len(b))
	copy(out[Bytes65Len-len(b):], b)
	return out, nil
}

// Bytes returns the identifier value (the trailing n bytes of the slot).
func (b Bytes65) Bytes() []byte {
	return b[Bytes65Len-int(b[0]):]
}

func (b Bytes65) String() string {
	return string(b.Bytes())
}

func decodeBytes65(data []byte, pos int) (Bytes65, error) {
	var out Bytes65
	copy(out[:], data[pos:pos+Bytes65Len])
	if out[0] > Bytes65Len-1 {
		return Bytes65{}, InvalidIdentifierLength{Length: out[0]}
	}
	// normalize: bytes outside the declared value must not carry data
	for _, c := range out[1 : Bytes65Len-int(out[0])] {
		if c != 0 {
			return Bytes65{}, InvalidIdentifierPadding{}
		}
	}
	return out, nil
}

// Calldata is the optional call-forwarding payload invoked by the vault
// after the swap completes: a target address slot plus opaque bytes.
type Calldata struct {
	Target Bytes65
	Bytes  []byte
}

// SendAssetPayload is the asset-swap variant of the wire packet.
type SendAssetPayload struct {
	FromVault Bytes65
	ToVault   Bytes65
	ToAccount Bytes65
	// U is the swap unit: transferred value along the price curve.
	U types.U256

	ToAssetIndex uint8
	MinOut       types.U256
	FromAmount   types.U256
	FromAsset    Bytes65
	BlockNumber  uint32
	Calldata     *Calldata
}

// SendLiquidityPayload is the liquidity-swap variant of the wire packet.
type SendLiquidityPayload struct {
	FromVault Bytes65
	ToVault   Bytes65
	ToAccount Bytes65
	U         types.U256

	MinVaultTokens    types.U256
	MinReferenceAsset types.U256
	FromAmount        types.U256
	BlockNumber       uint32
	Calldata          *Calldata
}

// CatalystV1Packet is a decoded wire packet: exactly one variant is set.
type CatalystV1Packet struct {
	SendAsset     *SendAssetPayload
	SendLiquidity *SendLiquidityPayload
}

func encodeCalldata(buf *bytes.Buffer, cd *Calldata) {
	if cd == nil {
		buf.Write([]byte{0, 0})
		return
	}
	var length [2]byte
	binary.BigEndian.PutUint16(length[:], uint16(Bytes65Len+len(cd.Bytes)))
	buf.Write(length[:])
	buf.Write(cd.Target[:])
	buf.Write(cd.Bytes)
}

// Encode serializes the packet into the Catalyst V1 wire format. It is
// deterministic and total for well-formed in-memory packets.
func (p *CatalystV1Packet) Encode() []byte {
	var buf bytes.Buffer
	switch {
	case p.SendAsset != nil:
		a := p.SendAsset
		buf.Grow(assetSwapLen)
		buf.WriteByte(ContextAssetSwap)
		buf.Write(a.FromVault[:])
		buf.Write(a.ToVault[:])
		buf.Write(a.ToAccount[:])
		buf.Write(a.U.Bytes())
		buf.WriteByte(a.ToAssetIndex)
		buf.Write(a.MinOut.Bytes())
		buf.Write(a.FromAmount.Bytes())
		buf.Write(a.FromAsset[:])
		var blockNum [4]byte
		binary.BigEndian.PutUint32(blockNum[:], a.BlockNumber)
		buf.Write(blockNum[:])
		encodeCalldata(&buf, a.Calldata)
	case p.SendLiquidity != nil:
		l := p.SendLiquidity
		buf.Grow(liquiditySwapLen)
		buf.WriteByte(ContextLiquiditySwap)
		buf.Write(l.FromVault[:])
		buf.Write(l.ToVault[:])
		buf.Write(l.ToAccount[:])
		buf.Write(l.U.Bytes())
		buf.Write(l.MinVaultTokens.Bytes())
		buf.Write(l.MinReferenceAsset.Bytes())
		buf.Write(l.FromAmount.Bytes())
		var blockNum [4]byte
		binary.BigEndian.PutUint32(blockNum[:], l.BlockNumber)
		buf.Write(blockNum[:])
		encodeCalldata(&buf, l.Calldata)
	default:
		panic("empty CatalystV1Packet")
	}
	return buf.Bytes()
}

func decodeU256(data []byte, pos int) types.U256 {
	var u types.U256
	copy(u[:], data[pos:pos+types.U256Len])
	return u
}

func decodeCalldata(data []byte, lenPos int) (*Calldata, error) {
	declared := int(binary.BigEndian.Uint16(data[lenPos : lenPos+2]))
	body := data[lenPos+2:]
	// total length is exact: trailing bytes beyond the declared calldata are
	// as much an error as a truncated buffer
	if len(body) != declared {
		return nil, InvalidLength{Expected: lenPos + 2 + declared, Got: len(data)}
	}
	if declared == 0 {
		return nil, nil
	}
	if declared < Bytes65Len {
		return nil, InvalidCalldataLength{Length: uint16(declared)}
	}
	target, err := decodeBytes65(body, 0)
	if err != nil {
		return nil, err
	}
	cdBytes := make([]byte, declared-Bytes65Len)
	copy(cdBytes, body[Bytes65Len:])
	return &Calldata{
		Target: target,
		Bytes:  cdBytes,
	}, nil
}

// Decode parses and validates a Catalyst V1 wire packet. Every malformed
// input maps to an error value; Decode never panics. Address-like fields are
// returned as opaque identifier slots — resolving them against the local
// chain's address format is the caller's concern.
func Decode(data []byte) (*CatalystV1Packet, error) {
	if len(data) < 1 {
		return nil, InvalidLength{Expected: 1, Got: 0}
	}
	switch data[contextPos] {
	case ContextAssetSwap:
		return decodeSendAsset(data)
	case ContextLiquiditySwap:
		return decodeSendLiquidity(data)
	default:
		return nil, InvalidContext{Context: data[contextPos]}
	}
}

func decodeSendAsset(data []byte) (*CatalystV1Packet, error) {
	if len(data) < assetSwapLen {
		return nil, InvalidLength{Expected: assetSwapLen, Got: len(data)}
	}
	fromVault, err := decodeBytes65(data, fromVaultPos)
	if err != nil {
		return nil, err
	}
	toVault, err := decodeBytes65(data, toVaultPos)
	if err != nil {
		return nil, err
	}
	toAccount, err := decodeBytes65(data, toAccountPos)
	if err != nil {
		return nil, err
	}
	fromAsset, err := decodeBytes65(data, fromAssetPos)
	if err != nil {
		return nil, err
	}
	calldata, err := decodeCalldata(data, assetCDLenPos)
	if err != nil {
		return nil, err
	}
	return &CatalystV1Packet{
		SendAsset: &SendAssetPayload{
			FromVault:    fromVault,
			ToVault:      toVault,
			ToAccount:    toAccount,
			U:            decodeU256(data, unitsPos),
			ToAssetIndex: data[toAssetIndexPos],
			MinOut:       decodeU256(data, minOutPos),
			FromAmount:   decodeU256(data, assetAmountPos),
			FromAsset:    fromAsset,
			BlockNumber:  binary.BigEndian.Uint32(data[assetBlockNumPos : assetBlockNumPos+4]),
			Calldata:     calldata,
		},
	}, nil
}

func decodeSendLiquidity(data []byte) (*CatalystV1Packet, error) {
	if len(data) < liquiditySwapLen {
		return nil, InvalidLength{Expected: liquiditySwapLen, Got: len(data)}
	}
	fromVault, err := decodeBytes65(data, fromVaultPos)
	if err != nil {
		return nil, err
	}
	toVault, err := decodeBytes65(data, toVaultPos)
	if err != nil {
		return nil, err
	}
	toAccount, err := decodeBytes65(data, toAccountPos)
	if err != nil {
		return nil, err
	}
	calldata, err := decodeCalldata(data, liquidityCDLenPos)
	if err != nil {
		return nil, err
	}
	return &CatalystV1Packet{
		SendLiquidity: &SendLiquidityPayload{
			FromVault:         fromVault,
			ToVault:           toVault,
			ToAccount:         toAccount,
			U:                 decodeU256(data, unitsPos),
			MinVaultTokens:    decodeU256(data, minVaultTokensPos),
			MinReferenceAsset: decodeU256(data, minReferenceAssetPos),
			FromAmount:        decodeU256(data, liquidityAmountPos),
			BlockNumber:       binary.BigEndian.Uint32(data[liquidityBlockNumPos : liquidityBlockNumPos+4]),
			Calldata:          calldata,
		},
	}, nil
}
