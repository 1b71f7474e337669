package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"volt/internal/diag"
)

// Bump when the payload layout changes so stale entries self-invalidate.
const diskCacheSchemaVersion uint16 = 1

// Digest identifies file content; it is the SHA-256 the FileSet already
// computes on load.
type Digest = [32]byte

// DiskCache persists per-file front-end results keyed by content digest,
// so repeated checks of unchanged files skip the scan and parse phases.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome of checking one file.
type DiskPayload struct {
	Schema uint16

	Path string
	Hash Digest

	// Outcome of the last run over this content.
	Broken    bool
	ErrorIDs  []string
	StmtCount uint32
}

// OpenDiskCache initializes the cache at the standard user location,
// honoring XDG_CACHE_HOME.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes the cache at an explicit directory (tests,
// project-local caches).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	// One subdirectory keeps the cache root listable by hand.
	return filepath.Join(c.dir, "files", hex.EncodeToString(key[:])+".mp")
}

// Put serializes the payload and installs it with an atomic rename.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}

// Get reads a payload back; the boolean reports whether the key was
// present. Entries with a stale schema count as absent.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// PayloadFor summarizes a finished parse into a cacheable payload.
func PayloadFor(res *ParseResult) *DiskPayload {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Broken: res.Bag.HasErrors(),
	}
	if res.File != nil {
		payload.Path = res.File.Path
		payload.Hash = res.File.Hash
	}
	if res.Builder != nil && res.FileID.IsValid() {
		payload.StmtCount = uint32(len(res.Builder.Files.Get(res.FileID).Stmts))
	}
	for _, d := range res.Bag.Items() {
		if d.Severity >= diag.SevError {
			payload.ErrorIDs = append(payload.ErrorIDs, d.Code.ID())
		}
	}
	return payload
}
