package zonefile

import (
	"testing"

	"github.com/miekg/dns"
)

func TestMatcher(t *testing.T) {
	m := NewMatcher(dns.TypeA, dns.TypeAAAA)
	testCases := []struct {
		line  string
		ok    bool
		label string
		rtype uint16
		rdata string
	}{
		{"host1.example.net.\t3600\tIN\tA\t192.0.2.5", true, "host1.example.net.", dns.TypeA, "192.0.2.5"},
		{"host1.example.net. 3600 IN AAAA 2001:db8::5", true, "host1.example.net.", dns.TypeAAAA, "2001:db8::5"},
		{"host1.example.net.   IN   A   192.0.2.5  ", true, "host1.example.net.", dns.TypeA, "192.0.2.5"},
		{"host1.example.net. 3600 IN AAAAA 2001:db8::5", false, "", 0, ""},
		{"host1.example.net 3600 IN A 192.0.2.5", false, "", 0, ""}, // Not fully qualified
		{"host1.example.net. 3600 IN CNAME www.example.net.", false, "", 0, ""},
		{"; host1.example.net. 3600 IN A 192.0.2.5", false, "", 0, ""},
		{"", false, "", 0, ""},
		{"host1.example.net. 1h IN A 192.0.2.5", false, "", 0, ""}, // Normalizers emit seconds
		{"host1.example.net. 3600 CH A 192.0.2.5", false, "", 0, ""},
	}

	for ix, tc := range testCases {
		rec, ok := m.Match(tc.line)
		if ok != tc.ok {
			t.Error(ix, "Match wrong for", tc.line, ok)
			continue
		}
		if !ok {
			continue
		}
		if rec.Label != tc.label || rec.Type != tc.rtype || rec.Rdata != tc.rdata {
			t.Error(ix, "Fields wrong", rec)
		}
	}
}

func TestScanner(t *testing.T) {
	lines := []string{
		"0.168.192.in-addr.arpa.\t3600\tIN\tSOA\tns1.example.net. hostmaster.example.net. 7 10800 900 604800 300",
		"0.168.192.in-addr.arpa.\t3600\tIN\tNS\tns1.example.net.",
		"1.0.168.192.in-addr.arpa.\t3600\tIN\tPTR\tgateway.example.net.",
		"; junk",
		"2.0.168.192.in-addr.arpa.\t3600\tIN\tPTR\tprinter.example.net.",
	}

	s := NewMatcher(dns.TypePTR, dns.TypeSOA).Scan(lines)
	var got []Record
	for rec, ok := s.Next(); ok; rec, ok = s.Next() {
		got = append(got, rec)
	}
	if len(got) != 3 {
		t.Fatal("Expected 3 records, got", len(got), got)
	}
	if got[0].Type != dns.TypeSOA || got[1].Type != dns.TypePTR || got[2].Rdata != "printer.example.net." {
		t.Error("Records out of order or wrong", got)
	}
	if _, ok := s.Next(); ok {
		t.Error("Exhausted scanner returned a record")
	}

	if _, ok := NewMatcher(dns.TypeA).Scan(nil).Next(); ok {
		t.Error("Empty scanner returned a record")
	}
}

func TestNewMatcherPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic with unknown type")
		}
	}()
	NewMatcher(65000)
}
