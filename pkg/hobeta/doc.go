// Package hobeta implements the header codec for the Hobeta container
// format, the 17-byte wrapper historically used to move single files in
// and out of TR-DOS floppy disk images.
//
// # Header Format
//
// A Hobeta container is a fixed header followed by the raw payload:
//
//	[Filename(8)][Filetype(1)][Start(2)][Length(2)][FirstSector(1)][OccupiedSectors(1)][CheckSum(2)]
//
// Fields:
//   - Filename: 8-byte padded TR-DOS filename, not NUL-terminated
//   - Filetype: type tag byte; 'B', 'C', 'D' and '#' are the standard values
//   - Start: program length for BASIC files, load address for everything else (little-endian)
//   - Length: declared payload size in bytes (little-endian)
//   - FirstSector: first sector on the source medium, reproduced verbatim
//   - OccupiedSectors: sector count on the source medium, reproduced verbatim
//   - CheckSum: 16-bit checksum over the preceding 15 bytes (little-endian)
//
// Every 17-byte pattern decodes to some Header. Fields outside the
// documented value sets are carried through untouched; real disk tools
// produced them and they are not corruption.
//
// # Checksum
//
// The checksum covers the first 15 header bytes and never the payload.
// It is the running sum
//
//	sum = uint16(sum + b*257 + i)
//
// over the bytes b at index i, with 16-bit wraparound after every step.
// The wraparound is part of the format: widening the accumulator without
// truncating produces values incompatible with real Hobeta files.
//
// A stored checksum that does not match the recomputed one is reported to
// the caller, never enforced. Containers with foreign or damaged headers
// must still be inspectable and strippable.
//
// # Extraction
//
// Extractor copies the payload that follows the header to a destination
// writer, bounded by the declared Length or, when configured, by whatever
// actually follows the header. Declared length and physical payload size
// routinely disagree because TR-DOS pads files to sector boundaries; a
// source that runs out early is a normal short copy, not an error.
package hobeta
