package legacy

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
)

// ErrNotFound is returned if a legacy font cannot be located.
var ErrNotFound = errors.New("legacy font not found")

// Locator resolves the name of a legacy font, e.g. "cmr10", to the path of
// its font file.
type Locator interface {
	Locate(name string) (string, error)
}

// Kpsewhich locates PFB files through the kpathsea database of a TeX
// installation. Binary defaults to "kpsewhich".
type Kpsewhich struct {
	Binary string
}

// Locate calls `kpsewhich <name>.pfb`.
func (k Kpsewhich) Locate(name string) (string, error) {
	bin := k.Binary
	if bin == "" {
		bin = "kpsewhich"
	}
	out, err := exec.Command(bin, name+".pfb").Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s (%s: %v)", ErrNotFound, name, bin, err)
	}
	path := strings.TrimSpace(string(out))
	if path == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	tracer().Debugf("kpsewhich located %s at %s", name, path)
	return path, nil
}

// SystemFonts searches the user's and the system's font directories.
type SystemFonts struct{}

// Locate looks for a file <name>.pfb in the font directories of the host.
func (SystemFonts) Locate(name string) (string, error) {
	path, err := findfont.Find(name + ".pfb")
	if err != nil || path == "" {
		return "", fmt.Errorf("%w: %s is not a system font", ErrNotFound, name)
	}
	tracer().Debugf("%s is a system font: %s", name, path)
	return path, nil
}

// Dir locates PFB files in a single directory.
type Dir string

// Locate checks for <dir>/<name>.pfb.
func (d Dir) Locate(name string) (string, error) {
	path := filepath.Join(string(d), name+".pfb")
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return path, nil
}

// Locators tries a list of locators in order; the first hit wins.
type Locators []Locator

// Locate returns the path found by the first successful locator.
func (ls Locators) Locate(name string) (string, error) {
	var errs []error
	for _, l := range ls {
		path, err := l.Locate(name)
		if err == nil {
			return path, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("%w: %s (no locator configured)", ErrNotFound, name)
	}
	return "", errors.Join(errs...)
}
