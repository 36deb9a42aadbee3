package libreoffice

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

const packageExt = ".oxt"

// stagePackage copies the .oxt file into the install directory and returns
// its new path. The copy lands under a temporary name and is renamed into
// place, so unopkg never sees a partial package.
func (m *Manager) stagePackage(pkg string) (string, error) {
	src, err := filepath.Abs(strings.TrimSpace(pkg))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}
	info, err := os.Lstat(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return "", fmt.Errorf("%w: package %q is a symlink", ErrSandboxViolation, src)
	case !info.Mode().IsRegular():
		return "", fmt.Errorf("%w: package %q is not a regular file", ErrInvalidPackage, src)
	case !strings.EqualFold(filepath.Ext(src), packageExt):
		return "", fmt.Errorf("%w: package %q is not an %s file", ErrInvalidPackage, src, packageExt)
	}

	if err := os.MkdirAll(m.installDir, 0o755); err != nil {
		return "", err
	}
	dest := filepath.Join(m.installDir, filepath.Base(src))
	if filepath.Dir(dest) != m.installDir {
		return "", fmt.Errorf("%w: package=%q", ErrSandboxViolation, pkg)
	}
	log.Debug().Str("src", src).Str("dest", dest).Msg("libreoffice: staging package")

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(m.installDir, ".staging-*"+packageExt)
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", err
	}
	return dest, nil
}
