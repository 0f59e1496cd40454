package main

import (
	"strings"
	"testing"

	"github.com/markdingo/dnsrev/config"
	"github.com/markdingo/dnsrev/log"
	"github.com/markdingo/dnsrev/mock"
)

func TestUsage(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	testCases := []struct {
		options string
		expect  string
		result  parseResult
	}{
		{"", "", parseContinue},
		{"-h", "SYNOPSIS", parseFailed},
		{"--help", "CONFIGURATION", parseFailed},
		{"-h -h", "SYNOPSIS", parseFailed}, // Dupes of help are ok
		{"-v", "Program:", parseStop},
		{"--version", "Project:", parseStop},
		{"goop", "goop", parseFailed},
		{"-X", "unknown shorthand flag", parseFailed},
		{"-c a.conf -c b.conf", "Duplicate option", parseFailed},
		{"-n -n", "Duplicate option", parseFailed},
		{"-c my.conf -n -d -s -q --log-minor --log-debug", "", parseContinue}, // Every legit option
		{"--config=my.conf --dry-run --diff --no-serial --quiet", "", parseContinue},
	}

	for ix, tc := range testCases {
		var opts []string
		if len(tc.options) > 0 {
			opts = strings.Split(tc.options, " ")
		}
		args := []string{programName}
		args = append(args, opts...)
		out.Reset()
		dr := newDNSRev()
		res := dr.parseOptions(args)
		if res != tc.result {
			t.Error(ix, "Results mismatch. Want", tc.result, "got", res)
		}
		got := out.String()
		if len(tc.expect) == 0 && len(got) != 0 {
			t.Error(ix, "Did not expect any output, but got", len(got), got)
		}
		if len(tc.expect) > 0 {
			if !strings.Contains(got, tc.expect) {
				t.Error(ix, "Output does not contain", tc.expect, "got", got)
			}
		}
	}
}

func TestOptionValues(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	dr := newDNSRev()
	if dr.opts.configPath != config.DefaultPath {
		t.Error("Default config path wrong", dr.opts.configPath)
	}
	res := dr.parseOptions([]string{programName, "-c", "/etc/dnsrev.conf", "-n", "-s"})
	if res != parseContinue {
		t.Fatal("Parse failed", out.String())
	}
	o := dr.opts
	if o.configPath != "/etc/dnsrev.conf" || !o.dryRunFlag || !o.noSerialFlag || o.diffFlag {
		t.Errorf("Options not transferred %+v", *o)
	}
}

func TestSetLogLevel(t *testing.T) {
	defer log.SetLevel(log.MajorLevel)

	testCases := []struct {
		opts  options
		level string
	}{
		{options{}, "Major"},
		{options{logMinorFlag: true}, "Minor"},
		{options{logDebugFlag: true}, "Debug"},
		{options{logMinorFlag: true, logDebugFlag: true}, "Debug"},
		{options{quietFlag: true, logDebugFlag: true}, "Silent"},
	}

	for ix, tc := range testCases {
		tc.opts.setLogLevel()
		if log.Level().String() != tc.level {
			t.Error(ix, "Wrong level. Want", tc.level, "got", log.Level())
		}
	}
}
