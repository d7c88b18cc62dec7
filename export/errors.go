package export

import (
	"fmt"
	"os"
)

// Returned when the export target path exists but is the wrong kind for the
// requested output mode.
type PathConflictError struct {
	Path string

	// The expected path kind: "file" for archive exports, "directory"
	// otherwise.
	Want string
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("export: target %q already exists and is not a %s", e.Path, e.Want)
}

// Check that an existing target path matches the requested export mode. The
// check runs before any work begins so a conflict leaves no partial state.
// A missing target is fine; it will be created.
func ValidateTarget(pathToTarget string, archive bool) error {
	fi, err := os.Stat(pathToTarget)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if archive && fi.IsDir() {
		return &PathConflictError{Path: pathToTarget, Want: "file"}
	}
	if !archive && !fi.IsDir() {
		return &PathConflictError{Path: pathToTarget, Want: "directory"}
	}
	return nil
}
