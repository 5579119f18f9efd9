package osutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// AferoCopyFile copies a file from src to dst on the given file system,
// preserving the source's mode.
func AferoCopyFile(fs afero.Fs, src string, dst string) (err error) {
	s, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		e := s.Close()
		if err == nil {
			err = e
		}
	}()

	d, err := fs.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		e := d.Close()
		if err == nil {
			err = e
		}
	}()

	_, err = io.Copy(d, s)
	if err != nil {
		return err
	}

	i, err := fs.Stat(src)
	if err != nil {
		return err
	}

	return fs.Chmod(dst, i.Mode())
}

// Backup copies src into folder under a timestamped name, so repeated runs
// never clobber an earlier backup. An empty folder means the system temp
// directory. Returns the backup path.
func Backup(fs afero.Fs, src string, folder string) (string, error) {
	if folder == "" {
		folder = os.TempDir()
	}

	if err := fs.MkdirAll(folder, 0755); err != nil {
		return "", err
	}

	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	stamp := time.Now().Format("20060102_150405")

	dst := filepath.Join(folder, fmt.Sprintf("%s_%s%s", stem, stamp, ext))

	return dst, AferoCopyFile(fs, src, dst)
}
