package tinyavif

import (
	"testing"

	"github.com/rachelplusplus/tinyavif/internal/obu"
)

func TestEncodeCoefficients_FramesTemporalDelimiterAndFrameOBU(t *testing.T) {
	coeffs := make([]int32, 64)
	for i := range coeffs {
		coeffs[i] = int32(i) - 32
	}

	out := EncodeCoefficients(coeffs, 36)

	wantTDHeader := byte(obu.TypeTemporalDelimiter)<<3 | (1 << 1)
	if out[0] != wantTDHeader {
		t.Fatalf("first OBU header = %#x, want temporal delimiter %#x", out[0], wantTDHeader)
	}
	wantFrameHeader := byte(obu.TypeFrame)<<3 | (1 << 1)
	if out[2] != wantFrameHeader {
		t.Fatalf("second OBU header = %#x, want frame %#x", out[2], wantFrameHeader)
	}
}

func TestEncodeCoefficients_EmptyInput(t *testing.T) {
	out := EncodeCoefficients(nil, 36)
	if len(out) == 0 {
		t.Fatal("expected non-empty output even for no coefficients (framing + finalize marker)")
	}
}

func TestEncodeCoefficients_AllZero_IsDeterministic(t *testing.T) {
	coeffs := make([]int32, 64)
	a := EncodeCoefficients(coeffs, 50)
	b := EncodeCoefficients(coeffs, 50)
	if string(a) != string(b) {
		t.Fatal("EncodeCoefficients is not deterministic for identical input")
	}
}

func TestEncodeCoefficients_HigherQIndexShrinksMagnitudes(t *testing.T) {
	coeffs := make([]int32, 64)
	for i := range coeffs {
		coeffs[i] = 500
	}

	lowQ := EncodeCoefficients(coeffs, 0)
	highQ := EncodeCoefficients(coeffs, 255)

	// A coarser quantizer (higher qindex) divides every coefficient by a
	// larger step, producing smaller quantized magnitudes and therefore
	// shorter Exp-Golomb codes.
	if len(highQ) >= len(lowQ) {
		t.Fatalf("expected coarser quantization to produce a smaller payload: qindex=0 -> %d bytes, qindex=255 -> %d bytes", len(lowQ), len(highQ))
	}
}

func TestEncodeCoefficients_PartialBlockPadsWithZero(t *testing.T) {
	// A block shorter than 64 coefficients should not panic; the
	// remainder is treated as zero.
	coeffs := []int32{10, -20, 30}
	out := EncodeCoefficients(coeffs, 36)
	if len(out) == 0 {
		t.Fatal("expected non-empty output for a partial block")
	}
}

func TestWriteSignedGolomb_NegativeAndPositive_DoNotPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("writeSignedGolomb panicked: %v", r)
		}
	}()
	// Exercised indirectly through EncodeCoefficients, covering both
	// sign branches.
	coeffs := []int32{-100, 100}
	EncodeCoefficients(coeffs, 10)
}
