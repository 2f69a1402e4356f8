package hobeta

import (
	"io"
)

// DefaultChunkSize is the extraction copy buffer size.
const DefaultChunkSize = 512 * 1024 // 512 KBytes

// ExtractorConfig holds configuration for the payload extractor.
type ExtractorConfig struct {
	// ChunkSize bounds each read while streaming the payload.
	// DefaultChunkSize is used when it is zero or negative.
	ChunkSize int

	// IgnoreDeclaredLength copies everything that physically follows the
	// header instead of stopping at the header's Length field.
	IgnoreDeclaredLength bool
}

// Extractor copies the payload of a Hobeta container to a destination
// writer, streaming in bounded chunks.
type Extractor struct {
	config ExtractorConfig
}

// NewExtractor creates an extractor with the given configuration.
func NewExtractor(config ExtractorConfig) *Extractor {
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultChunkSize
	}
	return &Extractor{config: config}
}

// Extract copies the payload that follows the header from src to dst and
// returns the number of bytes actually written.
//
// src must be the whole container, header included; Extract seeks past
// the header itself. The byte budget is h.Length, or the total bytes
// remaining after the header when IgnoreDeclaredLength is set. A source
// that ends before the budget is exhausted is a normal short copy: the
// smaller count comes back with a nil error, and the caller should
// report that count, not the budget. I/O errors from src and dst
// propagate unmodified.
func (e *Extractor) Extract(h Header, src io.ReadSeeker, dst io.Writer) (int64, error) {
	budget := int64(h.Length)
	if e.config.IgnoreDeclaredLength {
		size, err := src.Seek(0, io.SeekEnd)
		if err != nil {
			return 0, err
		}
		budget = size - HeaderSize
		if budget < 0 {
			budget = 0
		}
	}

	if _, err := src.Seek(HeaderSize, io.SeekStart); err != nil {
		return 0, err
	}

	buf := make([]byte, e.config.ChunkSize)
	var copied int64
	for copied < budget {
		chunk := budget - copied
		if chunk > int64(len(buf)) {
			chunk = int64(len(buf))
		}

		n, err := src.Read(buf[:chunk])
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return copied, werr
			}
			copied += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return copied, err
		}
		if n == 0 {
			break
		}
	}

	return copied, nil
}
