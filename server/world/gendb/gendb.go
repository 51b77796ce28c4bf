// Package gendb implements a persistent cache for generated chunks, backed by
// a leveldb key-value store with zstd-compressed snapshot payloads. Generation
// is deterministic, so the cache is purely an optimisation: a corrupt or stale
// entry is discarded and the chunk regenerated.
package gendb

import (
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
	"github.com/df-mc/terravolt/server/world"
	"github.com/df-mc/terravolt/server/world/chunk"
	"github.com/klauspost/compress/zstd"
)

// DB is a chunk snapshot store. Methods are safe for concurrent use.
type DB struct {
	conf Config
	ldb  *leveldb.DB

	enc *zstd.Encoder
	dec *zstd.Decoder
}

// Config holds the optional settings of a snapshot store.
type Config struct {
	// Log is the logger written to. A nil Log falls back to slog.Default().
	Log *slog.Logger
	// BlockSize is the leveldb block size in bytes. Zero selects 16KiB, a
	// good fit for the size of compressed chunk payloads.
	BlockSize int
	// ReadOnly opens the store without write access. StoreChunk becomes a
	// no-op returning an error.
	ReadOnly bool
}

func (conf Config) withDefaults() Config {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.BlockSize == 0 {
		conf.BlockSize = 16 * opt.KiB
	}
	return conf
}

// Open opens a chunk snapshot store at the directory passed, creating it if
// it does not yet exist.
func (conf Config) Open(dir string) (*DB, error) {
	conf = conf.withDefaults()
	ldb, err := leveldb.OpenFile(dir, &opt.Options{
		BlockSize: conf.BlockSize,
		ReadOnly:  conf.ReadOnly,
		// Payloads are zstd-compressed before storage.
		Compression: opt.NoCompression,
	})
	if err != nil {
		return nil, fmt.Errorf("open chunk db: %w", err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("open chunk db: create encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("open chunk db: create decoder: %w", err)
	}
	return &DB{conf: conf, ldb: ldb, enc: enc, dec: dec}, nil
}

// Open opens a chunk snapshot store with default settings. It is equivalent
// to Config{}.Open(dir).
func Open(dir string) (*DB, error) {
	return Config{}.Open(dir)
}

// StoreChunk writes the snapshot of a generated chunk, overwriting any
// previous snapshot at the same position.
func (db *DB) StoreChunk(dim world.Dimension, pos world.ChunkPos, c *chunk.Chunk) error {
	if db.conf.ReadOnly {
		return fmt.Errorf("store chunk %v: database opened read-only", pos)
	}
	payload := db.enc.EncodeAll(encodeChunk(c), nil)
	if err := db.ldb.Put(chunkKey(dim, pos), payload, nil); err != nil {
		return fmt.Errorf("store chunk %v: %w", pos, err)
	}
	return nil
}

// LoadChunk reads a previously stored chunk snapshot. The second return value
// is false if no snapshot exists at the position, or if the stored payload
// could not be decoded; in the latter case the entry is dropped and a debug
// line logged, and the caller regenerates the chunk.
func (db *DB) LoadChunk(dim world.Dimension, pos world.ChunkPos) (*chunk.Chunk, bool) {
	key := chunkKey(dim, pos)
	payload, err := db.ldb.Get(key, nil)
	if err != nil {
		return nil, false
	}
	raw, err := db.dec.DecodeAll(payload, nil)
	if err == nil {
		var c *chunk.Chunk
		if c, err = decodeChunk(raw); err == nil {
			return c, true
		}
	}
	db.conf.Log.Debug("dropping unreadable chunk snapshot", "pos", pos, "err", err)
	if !db.conf.ReadOnly {
		_ = db.ldb.Delete(key, nil)
	}
	return nil, false
}

// Close flushes and closes the underlying database.
func (db *DB) Close() error {
	db.enc.Close()
	db.dec.Close()
	if err := db.ldb.Close(); err != nil {
		return fmt.Errorf("close chunk db: %w", err)
	}
	return nil
}

// chunkKey builds the store key of a chunk: the chunk position as two little
// endian int32s followed by the dimension ID.
func chunkKey(dim world.Dimension, pos world.ChunkPos) []byte {
	key := make([]byte, 9)
	binary.LittleEndian.PutUint32(key, uint32(pos[0]))
	binary.LittleEndian.PutUint32(key[4:], uint32(pos[1]))
	key[8] = byte(dim.EncodeDimension())
	return key
}
