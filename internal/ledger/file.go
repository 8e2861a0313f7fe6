package ledger

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hostops/basekeeper/internal/fsutil"
	"github.com/hostops/basekeeper/internal/phpfpm"
)

// DefaultPath is the well-known ledger location.
const DefaultPath = "/var/lib/basekeeper/disabled-fpm"

// FileStore is a Store backed by a plain-text file, one unit name per
// line, no ordering contract on disk. Every mutation rewrites the file
// atomically (temp file + rename), so a crash mid-write cannot leave a
// partially-written ledger. The file is owned exclusively by this tool;
// concurrent invocations against the same host are unsupported.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the ledger file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Initialize() error {
	if err := fsutil.EnsureOwnerDir(filepath.Dir(s.path)); err != nil {
		return &PersistenceError{Op: "initialize", Path: s.path, Err: err}
	}
	if err := fsutil.EnsureOwnerFile(s.path); err != nil {
		return &PersistenceError{Op: "initialize", Path: s.path, Err: err}
	}
	return nil
}

func (s *FileStore) List() ([]string, error) {
	entries, err := s.read()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(entries))
	var units []string
	for _, name := range entries {
		if !seen[name] {
			seen[name] = true
			units = append(units, name)
		}
	}
	phpfpm.Sort(units)
	return units, nil
}

func (s *FileStore) Record(name string) error {
	entries, err := s.read()
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e == name {
			return nil
		}
	}
	return s.write(append(entries, name))
}

func (s *FileStore) Remove(name string) error {
	entries, err := s.read()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e != name {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}
	return s.write(kept)
}

// read returns the raw ledger lines, duplicates included. A missing file
// reads as empty.
func (s *FileStore) read() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "read", Path: s.path, Err: err}
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}

func (s *FileStore) write(entries []string) error {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	if err := fsutil.WriteFileAtomic(filepath.Dir(s.path), filepath.Base(s.path), []byte(b.String()), 0o600); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
