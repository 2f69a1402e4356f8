package hobeta

import (
	"encoding/binary"
	"io"
	"strings"
)

const (
	// HeaderSize is the fixed size of a Hobeta header in bytes.
	HeaderSize = 17

	// checksumLen is the number of header bytes covered by the checksum,
	// everything up to the CheckSum field itself.
	checksumLen = HeaderSize - 2
)

// Standard TR-DOS file type tags. Other values are legal and pass through
// undecoded.
const (
	TypeBasic        = 'B' // BASIC program
	TypeNumericArray = 'C' // numeric array
	TypeSequential   = 'D' // sequential file
	TypeCode         = '#' // byte/code array
)

// Errors
var (
	// ErrTruncatedInput reports that fewer than HeaderSize bytes were
	// available while decoding a header.
	ErrTruncatedInput = &FormatError{"truncated input: a Hobeta header is 17 bytes"}
)

// FormatError represents a Hobeta container format error.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}

// Header mirrors the TR-DOS directory entry embedded at the front of a
// Hobeta container. It is a plain value: decode once, read forever.
type Header struct {
	Filename        [8]byte // padded filename, may contain arbitrary bytes
	Filetype        byte    // type tag, see the Type* constants
	Start           uint16  // LEN for BASIC files, load address otherwise
	Length          uint16  // declared payload size in bytes
	FirstSector     byte    // first sector on the source medium
	OccupiedSectors byte    // sector count on the source medium
	CheckSum        uint16  // producer checksum over the preceding 15 bytes
}

// HeaderCodec decodes Hobeta headers from their binary representation.
type HeaderCodec struct{}

// NewHeaderCodec creates a new header codec instance.
func NewHeaderCodec() *HeaderCodec {
	return &HeaderCodec{}
}

// Decode deserializes the first HeaderSize bytes of data into a Header.
// Decoding is total: any 17-byte pattern yields a Header, with every
// field taking its literal value. Shorter input fails with
// ErrTruncatedInput and no partial extraction.
func (c *HeaderCodec) Decode(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, ErrTruncatedInput
	}

	var h Header
	copy(h.Filename[:], data[0:8])
	h.Filetype = data[8]
	h.Start = binary.LittleEndian.Uint16(data[9:11])
	h.Length = binary.LittleEndian.Uint16(data[11:13])
	h.FirstSector = data[13]
	h.OccupiedSectors = data[14]
	h.CheckSum = binary.LittleEndian.Uint16(data[15:17])

	return h, nil
}

// ReadHeader reads exactly HeaderSize bytes from r, decodes them and
// returns the header together with the checksum recomputed over the
// bytes actually read. A source that ends before the full header fails
// with ErrTruncatedInput; other read errors pass through unmodified.
//
// Comparing the returned checksum with h.CheckSum is the caller's
// business: a mismatch is a reportable condition, not a failure.
func (c *HeaderCodec) ReadHeader(r io.Reader) (Header, uint16, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, 0, ErrTruncatedInput
		}
		return Header{}, 0, err
	}

	h, err := c.Decode(buf)
	if err != nil {
		return Header{}, 0, err
	}

	return h, Checksum(buf[:checksumLen]), nil
}

// Verify reports whether the stored checksum matches an independently
// computed one.
func (h Header) Verify(computed uint16) bool {
	return h.CheckSum == computed
}

// Name returns the filename with trailing padding trimmed.
func (h Header) Name() string {
	return strings.TrimRight(string(h.Filename[:]), " \x00")
}

// Type returns the file type tag as a printable string.
func (h Header) Type() string {
	return string(rune(h.Filetype))
}

// StartLabel returns the display label for the Start field, whose
// meaning depends on the file type: program length for BASIC, load
// address for everything else.
func (h Header) StartLabel() string {
	if h.Filetype == TypeBasic {
		return "Prg LEN"
	}
	return "Place at"
}
