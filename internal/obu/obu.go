// Package obu frames entropy-coded payloads as AV1 Open Bitstream Units.
// It only writes: there is no OBU parser here, mirroring the writer-only
// scope of internal/entropy. The header and size-field layout follow the
// AV1 bitstream specification's obu_header()/leb128() syntax.
package obu

// Type identifies the kind of payload an OBU carries.
type Type byte

// OBU types used by a still-picture (single frame) AV1 bitstream. Values
// match the obu_type field of the AV1 bitstream specification; types this
// package never emits (tile list, reserved ranges) are omitted.
const (
	TypeSequenceHeader     Type = 1
	TypeTemporalDelimiter  Type = 2
	TypeFrameHeader        Type = 3
	TypeTileGroup          Type = 4
	TypeMetadata           Type = 5
	TypeFrame              Type = 6
	TypePadding            Type = 15
)

// AppendLEB128 appends value to dst using the unsigned LEB128 varint
// encoding the AV1 bitstream uses for obu_size and other variable-length
// fields: 7 bits of payload per byte, high bit set on every byte but the
// last.
func AppendLEB128(dst []byte, value uint64) []byte {
	for {
		b := byte(value & 0x7f)
		value >>= 7
		if value != 0 {
			dst = append(dst, b|0x80)
			continue
		}
		return append(dst, b)
	}
}

// Append writes one OBU of the given type wrapping payload onto dst and
// returns the extended slice. The emitted OBU always carries an explicit
// size field (obu_has_size_field = 1) and never uses the extension byte,
// since a still-picture bitstream has no temporal or spatial layers to
// select.
func Append(dst []byte, obuType Type, payload []byte) []byte {
	const hasSizeField = 1 << 1
	header := byte(obuType)<<3 | hasSizeField
	dst = append(dst, header)
	dst = AppendLEB128(dst, uint64(len(payload)))
	return append(dst, payload...)
}
