package tinyavif

import (
	"github.com/rachelplusplus/tinyavif/internal/consts"
	"github.com/rachelplusplus/tinyavif/internal/entropy"
)

// coeffTxSize selects the 8x8 scan order from internal/consts for
// EncodeCoefficients' blocks.
const coeffTxSize = 1

// EncodeCoefficients entropy-codes coeffs as a sequence of 8x8 transform
// coefficient blocks. Within each block, coefficients are linearized in
// AV1's default 8x8 scan order (consts.ScanOrder2D); the scan's first
// position (the DC coefficient) is requantized against
// consts.DCQuantizer(qindex), and every other position against
// consts.ACQuantizer(qindex). Each quantized value is written as a sign
// bit followed by an Exp-Golomb-coded magnitude. coeffs is read in
// row-major order within each 64-coefficient block; a final partial
// block is padded with zeros. The result is wrapped in a temporal
// delimiter OBU and a frame OBU, as EncodeLiterals does.
func EncodeCoefficients(coeffs []int32, qindex int) []byte {
	order := consts.ScanOrder2D(coeffTxSize)
	const blockDim = 8
	blockLen := len(order)
	dcQ := consts.DCQuantizer(qindex)
	acQ := consts.ACQuantizer(qindex)

	w := entropy.New()
	for blockStart := 0; blockStart < len(coeffs); blockStart += blockLen {
		for scanPos, coord := range order {
			raster := blockStart + int(coord.Row)*blockDim + int(coord.Col)
			var raw int32
			if raster < len(coeffs) {
				raw = coeffs[raster]
			}

			q := acQ
			if scanPos == 0 {
				q = dcQ
			}
			writeSignedGolomb(w, raw/q)
		}
	}

	return frameOBU(w.Finalize())
}

// writeSignedGolomb writes v as a sign bit (1 = negative) followed by the
// Exp-Golomb code for its absolute value.
func writeSignedGolomb(w *entropy.Writer, v int32) {
	neg := v < 0
	mag := v
	if neg {
		mag = -v
	}
	w.WriteBool(neg, 16384)
	w.WriteGolomb(uint32(mag))
}
