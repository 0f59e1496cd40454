package mock

import (
	"strings"
)

// IOWriter captures everything written to it, typically log output, so that tests can
// inspect it afterwards.
type IOWriter struct {
	line []byte
}

func (t *IOWriter) Reset() {
	t.line = t.line[:0]
}

func (t *IOWriter) Write(b []byte) (int, error) {
	t.line = append(t.line, b...)

	return len(b), nil
}

func (t *IOWriter) String() string {
	return string(t.line)
}

func (t *IOWriter) Len() int {
	return len(t.line)
}

// Lines returns the captured output split into lines with the trailing empty line, if
// any, removed.
func (t *IOWriter) Lines() []string {
	s := strings.TrimSuffix(string(t.line), "\n")
	if len(s) == 0 {
		return nil
	}

	return strings.Split(s, "\n")
}

// Count returns how many captured lines contain the substring.
func (t *IOWriter) Count(substr string) (c int) {
	for _, l := range t.Lines() {
		if strings.Contains(l, substr) {
			c++
		}
	}

	return
}
