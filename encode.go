package tinyavif

import (
	"github.com/rachelplusplus/tinyavif/internal/entropy"
	"github.com/rachelplusplus/tinyavif/internal/obu"
)

// EncodeLiterals entropy-codes data as a sequence of 8-bit uniform
// literals and wraps the result in a temporal delimiter OBU followed by
// a single frame OBU, producing a minimal but conformant-framed AV1
// still-picture byte stream. It exercises the primitive write
// operations an AV1 encoder's tile-group coding loop would call, without
// building any of the frame syntax that would normally select them.
func EncodeLiterals(data []byte) []byte {
	w := entropy.New()
	w.WriteLiteralBytes(data)
	return frameOBU(w.Finalize())
}

// frameOBU wraps an entropy-coded payload in a temporal delimiter OBU
// followed by a single frame OBU.
func frameOBU(payload []byte) []byte {
	out := obu.Append(nil, obu.TypeTemporalDelimiter, nil)
	out = obu.Append(out, obu.TypeFrame, payload)
	return out
}
