package correspond

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Provider produces the correspondence mapping.
type Provider interface {
	Mapping() (Mapping, error)
}

// Command runs an external generator which prints the mapping document
// to stdout. Interpreter defaults to "perl", Script to "mapping.pl".
// If Dir is set, the generator runs in this directory.
type Command struct {
	Interpreter string
	Script      string
	Dir         string
}

// Mapping runs the generator and decodes its output.
func (c Command) Mapping() (Mapping, error) {
	interp, script := c.Interpreter, c.Script
	if interp == "" {
		interp = "perl"
	}
	if script == "" {
		script = "mapping.pl"
	}
	cmd := exec.Command(interp, script)
	cmd.Dir = c.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	tracer().Debugf("running %s %s", interp, script)
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && msg != "" {
			return nil, fmt.Errorf("mapping generator %s %s failed: %s", interp, script, msg)
		}
		return nil, fmt.Errorf("mapping generator %s %s failed: %w", interp, script, err)
	}
	return Decode(bytes.NewReader(out))
}

// File reads a stored mapping document.
type File string

// Mapping reads and decodes the file.
func (f File) Mapping() (Mapping, error) {
	fd, err := os.Open(string(f))
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Decode(fd)
}
