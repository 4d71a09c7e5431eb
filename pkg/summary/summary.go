// Package summary appends reports to the report file read by GitHub Actions steps.
package summary

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

// FileName is the report file created in the current directory.
const FileName = "report.md"

const filePermission os.FileMode = 0o644

// Locker serializes writers of the same report file across processes.
type Locker interface {
	Lock() error
	Unlock() error
}

// NewFileLock returns a lock for the report file.
// The lock file lives in the temporary directory, so nothing but the report
// is written to the working directory.
func NewFileLock(reportPath string) *flock.Flock {
	return flock.New(LockPath(reportPath))
}

// LockPath returns the lock file path of the report file.
// The same report file always gets the same lock file.
func LockPath(reportPath string) string {
	if p, err := filepath.Abs(reportPath); err == nil {
		reportPath = p
	}
	sum := sha256.Sum256([]byte(reportPath))
	return filepath.Join(os.TempDir(), "markfind-"+hex.EncodeToString(sum[:8])+".lock")
}

type Writer struct {
	fs     afero.Fs
	path   string
	locker Locker
}

func NewWriter(fs afero.Fs, path string, locker Locker) *Writer {
	return &Writer{
		fs:     fs,
		path:   path,
		locker: locker,
	}
}

// Append appends the report and a trailing newline to the report file.
// The file is created if it doesn't exist.
func (w *Writer) Append(report string) (gErr error) {
	if w.locker != nil {
		if err := w.locker.Lock(); err != nil {
			return fmt.Errorf("lock the report file: %w", err)
		}
		defer func() {
			if err := w.locker.Unlock(); err != nil && gErr == nil {
				gErr = fmt.Errorf("unlock the report file: %w", err)
			}
		}()
	}
	f, err := w.fs.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermission)
	if err != nil {
		return fmt.Errorf("open the report file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(report + "\n"); err != nil {
		return fmt.Errorf("write the report file: %w", err)
	}
	return nil
}
