package normalizer

import (
	"fmt"
)

// Normalizer is the interface satisfied by all zonefile canonicalizers. Normalize reads
// the zonefile at path with zone as the origin and returns the canonical lines. Any
// syntax problem with the zonefile results in an error, normally an *Error.
type Normalizer interface {
	Normalize(zone, path string) ([]string, error)
}

// Error is returned when a zonefile fails to normalize. Diagnostic contains whatever the
// underlying parser had to say about the zonefile, verbatim, so it can be shown to the
// operator.
type Error struct {
	Zone       string
	Path       string
	Diagnostic string
	Err        error
}

func (t *Error) Error() string {
	s := fmt.Sprintf("While parsing %s (zone %s)", t.Path, t.Zone)
	if len(t.Diagnostic) > 0 {
		s += ":\n" + t.Diagnostic
	} else if t.Err != nil {
		s += ": " + t.Err.Error()
	}

	return s
}

func (t *Error) Unwrap() error {
	return t.Err
}
