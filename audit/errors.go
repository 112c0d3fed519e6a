package audit

import "fmt"

// StructuralError signals that the audited assets are broken in a way which
// makes checking a font meaningless. Font is empty for problems with the
// shared inputs, i.e. the metrics table or the correspondence mapping.
type StructuralError struct {
	Font string
	Err  error
}

func (e *StructuralError) Error() string {
	if e.Font == "" {
		return fmt.Sprintf("cannot audit fonts: %v", e.Err)
	}
	return fmt.Sprintf("cannot audit font %s: %v", e.Font, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

func structural(font string, err error) error {
	return &StructuralError{Font: font, Err: err}
}
