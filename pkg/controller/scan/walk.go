package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Extension is the suffix of the files markfind scans.
const Extension = ".rpy"

// enumerateFiles returns Ren'Py scripts under root.
// A directory's files come before its subdirectories, and entries are sorted
// by name, so the order is stable between runs. Symbolic links to files are
// scanned, but symbolic links to directories aren't followed.
// Directories which can't be read are skipped.
func (c *Controller) enumerateFiles(logE *logrus.Entry, root string) []string {
	files := []string{}
	c.walk(logE, root, &files)
	return files
}

func (c *Controller) walk(logE *logrus.Entry, dir string, files *[]string) {
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		logE.WithField("dir", dir).WithError(err).Debug("skip a directory which can't be read")
		return
	}
	dirs := []string{}
	for _, entry := range entries {
		p := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			dirs = append(dirs, p)
			continue
		}
		if !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		if c.isRegularFile(entry, p) {
			*files = append(*files, p)
		}
	}
	for _, d := range dirs {
		c.walk(logE, d, files)
	}
}

func (c *Controller) isRegularFile(entry os.FileInfo, p string) bool {
	if entry.Mode().IsRegular() {
		return true
	}
	if entry.Mode()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := c.fs.Stat(p)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}
