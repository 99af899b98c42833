package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daybook/pkg/daykey"
)

// ErrNotFound is returned by Read when no note is stored under a key.
var ErrNotFound = errors.New("store: note not found")

// Persistence defines the persistence contract for daily notes.
type Persistence interface {
	Read(key string) (string, error)
	Write(key, text string) error
	Erase(key string) error
	Has(key string) bool
	Keys(ctx context.Context) []string
	Watch(ctx context.Context, key string) (<-chan Event, error)
}

const notesDir = "notes"

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	base := cfg.BasePath()
	if base == "" {
		return nil, errors.New("store: base path unknown")
	}
	root := filepath.Join(base, notesDir)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          root,
		TempDir:           filepath.Join(base, ".tmp"),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      0, // other processes write the same files
	}), basePath: root}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Read always goes to disk.
func (p *persistence) Read(key string) (string, error) {
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", err
	}
	defer rc.Close()
	val, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), nil
}

func (p *persistence) Write(key, text string) error {
	if _, err := daykey.Parse(key); err != nil {
		return err
	}
	return p.d.Write(key, []byte(text))
}

func (p *persistence) Erase(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *persistence) Has(key string) bool {
	return p.d.Has(key)
}

// Keys lists stored day keys oldest first. Files that are not day keys are
// skipped.
func (p *persistence) Keys(ctx context.Context) []string {
	parsed := make([]daykey.Key, 0)
	for key := range p.d.Keys(ctx.Done()) {
		k, err := daykey.Parse(key)
		if err != nil {
			continue
		}
		parsed = append(parsed, k)
	}
	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].Less(parsed[j])
	})
	keys := make([]string, len(parsed))
	for i, k := range parsed {
		keys[i] = k.String()
	}
	return keys
}

// pathFor mirrors keyToPathTransform for callers that need the file on disk.
func (p *persistence) pathFor(key string) string {
	pk := keyToPathTransform(key)
	return filepath.Join(append(append([]string{p.basePath}, pk.Path...), pk.FileName)...)
}

// keyToPathTransform buckets notes by year: "2024-2-15" lives at 2024/2024-2-15.
func keyToPathTransform(s string) *diskv.PathKey {
	k, err := daykey.Parse(s)
	if err != nil {
		return &diskv.PathKey{FileName: s}
	}
	return &diskv.PathKey{
		Path:     []string{fmt.Sprintf("%d", k.Year)},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
