package hobeta

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestChecksum_GoldenSamples(t *testing.T) {
	// Reference values computed with the original producer arithmetic.
	testCases := []struct {
		name string
		data []byte
		want uint16
	}{
		{
			name: "TESTFILE header",
			data: func() []byte {
				buf := make([]byte, checksumLen)
				copy(buf[0:8], "TESTFILE")
				buf[8] = 'B'
				binary.LittleEndian.PutUint16(buf[9:11], 100)
				binary.LittleEndian.PutUint16(buf[11:13], 256)
				buf[13] = 3
				buf[14] = 1
				return buf
			}(),
			want: 3700,
		},
		{
			name: "GAME code block header",
			data: func() []byte {
				buf := make([]byte, checksumLen)
				copy(buf[0:8], "GAME    ")
				buf[8] = '#'
				binary.LittleEndian.PutUint16(buf[9:11], 0x8000)
				binary.LittleEndian.PutUint16(buf[11:13], 0x1B00)
				buf[13] = 0
				buf[14] = 27
				return buf
			}(),
			want: 30172,
		},
		{
			name: "all zero bytes sum the index term only",
			data: make([]byte, checksumLen),
			want: 105, // 0+1+...+14
		},
		{
			name: "empty input",
			data: []byte{},
			want: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Checksum(tc.data); got != tc.want {
				t.Errorf("Checksum mismatch: got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestChecksum_Wraparound(t *testing.T) {
	// 15 bytes of 0xFF accumulate to 983130 in unbounded arithmetic.
	// With 16-bit truncation at every step the result must be
	// 983130 mod 65536 = 90.
	data := bytes.Repeat([]byte{0xFF}, checksumLen)
	if got := Checksum(data); got != 90 {
		t.Errorf("wraparound broken: got %d, want 90", got)
	}
}

func TestChecksum_Deterministic(t *testing.T) {
	data := []byte{0x01, 0x80, 0xFF, 0x20, 0x42, 0x00, 0x99, 0x7E}
	first := Checksum(data)
	for i := 0; i < 100; i++ {
		if got := Checksum(data); got != first {
			t.Fatalf("Checksum is not deterministic: %d vs %d", got, first)
		}
	}
}

func TestChecksum_SensitiveToValueAndPosition(t *testing.T) {
	base := bytes.Repeat([]byte{0x10}, checksumLen)
	want := Checksum(base)

	// Changing any single byte value changes the sum.
	for i := range base {
		mutated := append([]byte{}, base...)
		mutated[i]++
		if Checksum(mutated) == want {
			t.Errorf("changing byte %d did not change the checksum", i)
		}
	}

	// The index term distinguishes inputs of different lengths with the
	// same byte values.
	if Checksum(base[:10]) == Checksum(base[:11]) {
		t.Error("inputs of different length collided")
	}
}
