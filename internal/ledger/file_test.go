package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s := NewFileStore(filepath.Join(t.TempDir(), "state", "disabled-fpm"))
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return s
}

func TestInitialize_Idempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize() second call error = %v", err)
	}

	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("ledger perm = %04o, want 0600", perm)
	}

	dirInfo, err := os.Stat(filepath.Dir(s.Path()))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := dirInfo.Mode().Perm(); perm != 0o700 {
		t.Errorf("ledger dir perm = %04o, want 0700", perm)
	}
}

func TestRecord_Idempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Record("php8.1-fpm"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Record("php8.1-fpm"); err != nil {
		t.Fatalf("Record() second call error = %v", err)
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"php8.1-fpm"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	s := newTestStore(t)

	if err := s.Record("php8.1-fpm"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Remove("php7.4-fpm"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"php8.1-fpm"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestRecordRemove_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.Record("php8.1-fpm"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := s.Remove("php8.1-fpm"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List() = %v, want empty after round trip", got)
	}
}

func TestList_DeduplicatesAndSorts(t *testing.T) {
	s := newTestStore(t)

	// Simulate partial prior state written by an interrupted run.
	raw := "php8.2-fpm\nphp7.4-fpm\nphp8.2-fpm\n\nphp8.1-fpm\n"
	if err := os.WriteFile(s.Path(), []byte(raw), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"php7.4-fpm", "php8.1-fpm", "php8.2-fpm"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestRemove_DeletesAllOccurrences(t *testing.T) {
	s := newTestStore(t)

	raw := "php8.1-fpm\nphp7.4-fpm\nphp8.1-fpm\n"
	if err := os.WriteFile(s.Path(), []byte(raw), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := s.Remove("php8.1-fpm"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	got, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"php7.4-fpm"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestList_MissingFileReadsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "absent"))

	got, err := s.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List() = %v, want empty", got)
	}
}

func TestWrite_UnwritableSignalsPersistenceError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "disabled-fpm"))
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatalf("Chmod() error = %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o700) })

	err := s.Record("php8.1-fpm")
	if err == nil {
		t.Fatal("Record() = nil, want PersistenceError")
	}
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Errorf("Record() error = %T, want *PersistenceError", err)
	}
}
