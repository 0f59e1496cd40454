package zonefile

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/miekg/dns"
)

// Record is a single RR extracted from normalized zone text.
type Record struct {
	Label string // Owner name, always fully qualified
	Type  uint16 // dns.Type* value
	Rdata string // Everything after the type, unparsed
}

// Matcher extracts records of interest from normalized zone text. It is a filter, not a
// validator, so lines which do not match, such as comments or other types, are silently
// ignored. Validation is the responsibility of the normalizer.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher creates a matcher for the supplied RR types. It panics if a type is unknown
// to miekg as that is a programming error.
func NewMatcher(types ...uint16) *Matcher {
	names := make([]string, 0, len(types))
	for _, t := range types {
		s, ok := dns.TypeToString[t]
		if !ok {
			panic(fmt.Sprintf("zonefile.NewMatcher called with unknown type %d", t))
		}
		names = append(names, regexp.QuoteMeta(s))
	}

	return &Matcher{
		re: regexp.MustCompile(`^(\S*\.)\s+(?:\d+\s+)?IN\s+(` + strings.Join(names, "|") + `)\s+(.*)$`),
	}
}

// Match returns the record in the line, if any.
func (t *Matcher) Match(line string) (rec Record, ok bool) {
	m := t.re.FindStringSubmatch(line)
	if m == nil {
		return
	}
	rec.Label = m[1]
	rec.Type = dns.StringToType[m[2]]
	rec.Rdata = strings.TrimSpace(m[3])

	return rec, true
}

// Scanner lazily walks a set of lines returning each matching record in turn. Use it
// like so:
//
//	s := matcher.Scan(lines)
//	for rec, ok := s.Next(); ok; rec, ok = s.Next() {
//	     ...
//	}
type Scanner struct {
	matcher *Matcher
	lines   []string
	ix      int
}

func (t *Matcher) Scan(lines []string) *Scanner {
	return &Scanner{matcher: t, lines: lines}
}

// Next returns the next matching record. The bool is false once all lines have been
// consumed.
func (t *Scanner) Next() (Record, bool) {
	for t.ix < len(t.lines) {
		line := t.lines[t.ix]
		t.ix++
		if rec, ok := t.matcher.Match(line); ok {
			return rec, true
		}
	}

	return Record{}, false
}
