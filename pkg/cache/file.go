package cache

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"time"
)

// FileCache stores rendered artifacts on disk, one blob per key. The
// payload is kept verbatim (SVG text, PNG or PDF bytes) behind a small
// fixed header, so a hit is a single read with no decoding step.
type FileCache struct {
	dir string
}

// entryHeaderLen is the size of the blob header: the expiration time
// as big-endian unix nanoseconds, zero meaning no expiration.
const entryHeaderLen = 8

// NewFileCache creates an artifact cache rooted at dir, creating the
// directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get reads an artifact. Truncated or expired blobs are removed and
// reported as a miss.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(raw) < entryHeaderLen {
		_ = os.Remove(path)
		return nil, false, nil
	}

	expires := int64(binary.BigEndian.Uint64(raw[:entryHeaderLen]))
	if expires != 0 && time.Now().UnixNano() > expires {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return raw[entryHeaderLen:], true, nil
}

// Set writes an artifact. The blob goes to a temp file first and is
// renamed into place, so a concurrent Get never sees a partial write.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var header [entryHeaderLen]byte
	if ttl > 0 {
		binary.BigEndian.PutUint64(header[:], uint64(time.Now().Add(ttl).UnixNano()))
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(header[:]); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes an artifact. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for the file cache.
func (c *FileCache) Close() error {
	return nil
}

// path maps a key to a file path, sharding by the first two hash
// characters so one directory never holds every blob.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".blob")
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
