package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pierrec/lz4"
	"github.com/ugorji/go/codec"

	"github.com/LeJamon/goXRPLwasm/types"
)

const (
	// valueHeaderSize is the stored prefix: 1 compression flag + 4-byte LE
	// uncompressed length.
	valueHeaderSize = 5

	// minCompressSize skips compression for records too small to benefit.
	minCompressSize = 128

	// cacheSize bounds the decoded-record cache.
	cacheSize = 1024
)

var (
	ErrNotFound = errors.New("snapshot: record not found")
	ErrNoHeader = errors.New("snapshot: no captured header")
)

// headerKey is a reserved non-keylet key; keylet keys are always 32 bytes.
var headerKey = []byte("meta/header")

var cborHandle codec.CborHandle

// Store is a pebble-backed snapshot of captured ledger entries with a
// decoded-record read cache.
type Store struct {
	db    *pebble.DB
	cache *lru.Cache[types.Hash256, *Record]
}

// Open opens (or creates) a snapshot database at path.
func Open(path string) (*Store, error) {
	return open(path, &pebble.Options{})
}

// OpenMem opens an in-memory snapshot, used by tests and dry runs.
func OpenMem() (*Store, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

func open(path string, opts *pebble.Options) (*Store, error) {
	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open %q: %w", path, err)
	}
	cache, err := lru.New[types.Hash256, *Record](cacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, cache: cache}, nil
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	if err := s.db.Flush(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}

// Put stores a record under its keylet.
func (s *Store) Put(rec *Record) error {
	value, err := encodeValue(rec)
	if err != nil {
		return err
	}
	if err := s.db.Set(rec.Keylet[:], value, pebble.NoSync); err != nil {
		return fmt.Errorf("snapshot: store %s: %w", rec.Keylet, err)
	}
	s.cache.Add(rec.Keylet, rec)
	return nil
}

// Get loads the record stored under a keylet. A missing keylet is
// ErrNotFound.
func (s *Store) Get(keylet types.Hash256) (*Record, error) {
	if rec, ok := s.cache.Get(keylet); ok {
		return rec, nil
	}

	raw, closer, err := s.db.Get(keylet[:])
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("snapshot: fetch %s: %w", keylet, err)
	}
	defer closer.Close()

	var rec Record
	if err := decodeValue(raw, &rec); err != nil {
		return nil, fmt.Errorf("snapshot: decode %s: %w", keylet, err)
	}
	s.cache.Add(keylet, &rec)
	return &rec, nil
}

// PutHeader stores the captured ledger header.
func (s *Store) PutHeader(h *Header) error {
	value, err := encodeValue(h)
	if err != nil {
		return err
	}
	return s.db.Set(headerKey, value, pebble.NoSync)
}

// GetHeader loads the captured ledger header.
func (s *Store) GetHeader() (*Header, error) {
	raw, closer, err := s.db.Get(headerKey)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNoHeader
		}
		return nil, err
	}
	defer closer.Close()

	var h Header
	if err := decodeValue(raw, &h); err != nil {
		return nil, fmt.Errorf("snapshot: decode header: %w", err)
	}
	return &h, nil
}

// ForEach visits every captured record. Iteration stops at the first error
// the callback returns.
func (s *Store) ForEach(fn func(*Record) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		if len(iter.Key()) != types.Hash256Size {
			// Reserved metadata keys.
			continue
		}
		var rec Record
		if err := decodeValue(iter.Value(), &rec); err != nil {
			return fmt.Errorf("snapshot: decode %x: %w", iter.Key(), err)
		}
		if err := fn(&rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Len counts the captured records.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.ForEach(func(*Record) error {
		n++
		return nil
	})
	return n, err
}

// encodeValue renders v as CBOR behind the stored value header, compressing
// the payload when it is large enough to be worth it.
func encodeValue(v any) ([]byte, error) {
	var payload []byte
	if err := codec.NewEncoderBytes(&payload, &cborHandle).Encode(v); err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}

	out := make([]byte, valueHeaderSize, valueHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(out[1:5], uint32(len(payload)))

	if len(payload) >= minCompressSize {
		compressed := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, compressed, nil)
		// Keep the compressed form only when it actually shrinks the value.
		if err == nil && n > 0 && n < len(payload) {
			out[0] = 1
			return append(out, compressed[:n]...), nil
		}
	}
	return append(out, payload...), nil
}

func decodeValue(raw []byte, v any) error {
	if len(raw) < valueHeaderSize {
		return errors.New("truncated value")
	}
	payload := raw[valueHeaderSize:]

	if raw[0] == 1 {
		size := int(binary.LittleEndian.Uint32(raw[1:5]))
		decompressed := make([]byte, size)
		n, err := lz4.UncompressBlock(payload, decompressed)
		if err != nil {
			return fmt.Errorf("decompress: %w", err)
		}
		payload = decompressed[:n]
	}
	return codec.NewDecoderBytes(payload, &cborHandle).Decode(v)
}
