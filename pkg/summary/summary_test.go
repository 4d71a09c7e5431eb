package summary_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/markfind/pkg/summary"
)

type fakeLocker struct {
	locked   int
	unlocked int
	lockErr  error
}

func (l *fakeLocker) Lock() error {
	if l.lockErr != nil {
		return l.lockErr
	}
	l.locked++
	return nil
}

func (l *fakeLocker) Unlock() error {
	l.unlocked++
	return nil
}

func TestWriter_Append(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	locker := &fakeLocker{}
	w := summary.NewWriter(fs, summary.FileName, locker)
	if err := w.Append("first"); err != nil {
		t.Fatal(err)
	}
	if err := w.Append("second"); err != nil {
		t.Fatal(err)
	}
	b, err := afero.ReadFile(fs, summary.FileName)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "first\nsecond\n" {
		t.Errorf("wanted %q, got %q", "first\nsecond\n", string(b))
	}
	if locker.locked != 2 || locker.unlocked != 2 {
		t.Errorf("the lock must be taken and released per append: %+v", locker)
	}
}

func TestWriter_Append_lockError(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	w := summary.NewWriter(fs, summary.FileName, &fakeLocker{lockErr: errors.New("busy")})
	if err := w.Append("report"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if f, _ := afero.Exists(fs, summary.FileName); f {
		t.Error("the report file must not be written without the lock")
	}
}

func TestWriter_Append_fileLock(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), summary.FileName)
	fs := afero.NewOsFs()
	w := summary.NewWriter(fs, p, summary.NewFileLock(p))
	if err := w.Append("report"); err != nil {
		t.Fatal(err)
	}
	b, err := afero.ReadFile(fs, p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "report\n" {
		t.Errorf("wanted %q, got %q", "report\n", string(b))
	}
	entries, err := afero.ReadDir(fs, filepath.Dir(p))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("only the report file must be written next to the report: %d entries", len(entries))
	}
}

func TestLockPath(t *testing.T) {
	t.Parallel()
	a := summary.LockPath(filepath.Join("a", summary.FileName))
	if a != summary.LockPath(filepath.Join("a", summary.FileName)) {
		t.Error("the lock path must be stable")
	}
	if a == summary.LockPath(filepath.Join("b", summary.FileName)) {
		t.Error("different report files must get different locks")
	}
	if filepath.Dir(a) != filepath.Clean(os.TempDir()) {
		t.Errorf("the lock file must be in the temporary directory: %s", a)
	}
}
