package catalog

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/zxtools/hobeta/pkg/hobeta"
)

// Scanner walks a filesystem looking for Hobeta containers and turns
// their headers into catalog entries.
type Scanner struct {
	fs    afero.Fs
	codec *hobeta.HeaderCodec
}

// NewScanner creates a scanner over the given filesystem. A nil fs means
// the host filesystem.
func NewScanner(fs afero.Fs) *Scanner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Scanner{
		fs:    fs,
		codec: hobeta.NewHeaderCodec(),
	}
}

// Scan walks root and returns an entry for every regular file large
// enough to carry a Hobeta header. Files that are too short or cannot be
// read are skipped, not fatal; a header with a bad checksum is still
// cataloged, with both checksum values recorded.
func (s *Scanner) Scan(root string) ([]Entry, error) {
	var entries []Entry

	err := afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if info.Size() < hobeta.HeaderSize {
			log.Debug().Str("path", path).Int64("size", info.Size()).
				Msg("skipping file smaller than a Hobeta header")
			return nil
		}

		entry, err := s.scanFile(path, info)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("skipping unreadable file")
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *Scanner) scanFile(path string, info os.FileInfo) (Entry, error) {
	file, err := s.fs.Open(path)
	if err != nil {
		return Entry{}, err
	}
	defer file.Close()

	header, computed, err := s.codec.ReadHeader(file)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Path:             path,
		Name:             header.Name(),
		Filetype:         header.Filetype,
		Start:            header.Start,
		Length:           header.Length,
		FirstSector:      header.FirstSector,
		OccupiedSectors:  header.OccupiedSectors,
		StoredCheckSum:   header.CheckSum,
		ComputedCheckSum: computed,
		PayloadBytes:     info.Size() - hobeta.HeaderSize,
		ScannedAt:        time.Now().UTC(),
	}, nil
}
