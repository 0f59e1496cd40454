package normalizer

import (
	"os"
	"time"

	"github.com/miekg/dns"
)

var defaultTTL = uint32(time.Hour.Seconds()) // In case $TTL is absent

// Builtin normalizes zonefiles with the miekg/dns zone parser. The output lines are the
// String() rendering of each RR which is tab separated and always contains a TTL.
//
// Builtin is not as thorough a validator as named-compilezone. It checks syntax but not,
// for example, that a CNAME has no other data.
type Builtin struct{}

func NewBuiltin() *Builtin {
	return &Builtin{}
}

func (t *Builtin) Normalize(zone, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Zone: zone, Path: path, Err: err}
	}
	defer f.Close()

	parser := dns.NewZoneParser(f, dns.Fqdn(zone), path)
	parser.SetIncludeAllowed(true)
	parser.SetDefaultTTL(defaultTTL)

	lines := []string{}
	for rr, ok := parser.Next(); ok; rr, ok = parser.Next() {
		lines = append(lines, rr.String())
	}
	if err := parser.Err(); err != nil {
		return nil, &Error{Zone: zone, Path: path, Diagnostic: err.Error(), Err: err}
	}

	return lines, nil
}
