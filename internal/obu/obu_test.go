package obu

import "testing"

func TestAppendLEB128_SmallValue_SingleByte(t *testing.T) {
	got := AppendLEB128(nil, 5)
	want := []byte{5}
	if string(got) != string(want) {
		t.Fatalf("AppendLEB128(5) = %v, want %v", got, want)
	}
}

func TestAppendLEB128_MultiByte(t *testing.T) {
	// 300 = 0b1_0010_1100 -> low 7 bits 0x2c with continuation, then 0x02
	got := AppendLEB128(nil, 300)
	want := []byte{0xac, 0x02}
	if string(got) != string(want) {
		t.Fatalf("AppendLEB128(300) = %#v, want %#v", got, want)
	}
}

func TestAppendLEB128_Zero(t *testing.T) {
	got := AppendLEB128(nil, 0)
	want := []byte{0}
	if string(got) != string(want) {
		t.Fatalf("AppendLEB128(0) = %v, want %v", got, want)
	}
}

func TestAppend_HeaderAndSize(t *testing.T) {
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	got := Append(nil, TypeFrame, payload)

	wantHeader := byte(TypeFrame)<<3 | (1 << 1)
	if got[0] != wantHeader {
		t.Fatalf("header = %#x, want %#x", got[0], wantHeader)
	}
	if got[1] != byte(len(payload)) {
		t.Fatalf("size field = %d, want %d", got[1], len(payload))
	}
	if string(got[2:]) != string(payload) {
		t.Fatalf("payload = %v, want %v", got[2:], payload)
	}
}

func TestAppend_AppendsToExistingSlice(t *testing.T) {
	dst := []byte{0xff, 0xff}
	got := Append(dst, TypeTemporalDelimiter, nil)
	if len(got) != 2+1+1 {
		t.Fatalf("len(got) = %d, want 4", len(got))
	}
	if got[0] != 0xff || got[1] != 0xff {
		t.Fatalf("existing prefix overwritten: %v", got[:2])
	}
}

func TestAppend_LargePayload_MultiByteSize(t *testing.T) {
	payload := make([]byte, 200)
	got := Append(nil, TypeTileGroup, payload)
	if got[1] != (200&0x7f)|0x80 {
		t.Fatalf("first size byte = %#x", got[1])
	}
	if got[2] != byte(200>>7) {
		t.Fatalf("second size byte = %#x", got[2])
	}
	if len(got) != 1+2+200 {
		t.Fatalf("len(got) = %d, want %d", len(got), 1+2+200)
	}
}
