package theme

import (
	"errors"
	"fmt"
	"regexp"
)

// MaxNameLen is the longest accepted theme name.
const MaxNameLen = 32

// ErrInvalidName is returned for theme names that cannot be used in config
// files and on the command line.
var ErrInvalidName = errors.New("invalid theme name")

// Theme names start with a letter and continue with lower-case letters,
// digits and hyphens.
var nameRegexp = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateName reports whether name can be registered as a theme.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case len(name) > MaxNameLen:
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidName, name, MaxNameLen)
	case !nameRegexp.MatchString(name):
		return fmt.Errorf("%w: %q must start with a-z and use only a-z, 0-9 and '-'", ErrInvalidName, name)
	}
	return nil
}
