package main

import (
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/markdingo/dnsrev/log"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors or help, do not continue and exit non-zero
)

// parseOptions populates t.opts from the command line. Help is treated as a failure so
// that a cron job or wrapper script which passes the wrong arguments to dnsrev sees a
// non-zero exit, which is the way it has always behaved.
func (t *dnsRev) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}
	fs.SetOutput(log.Out())
	t.fs = fs

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	fs.StringVarP(&t.opts.configPath, "config", "c", t.opts.configPath,
		"Configuration file listing the forward and reverse zones")
	fs.BoolVarP(&t.opts.dryRunFlag, "dry-run", "n", false,
		`Dry run. Work out what would change but never replace a
zonefile.`)
	fs.BoolVarP(&t.opts.diffFlag, "diff", "d", false, "Show a unified diff of each change")
	fs.BoolVarP(&t.opts.noSerialFlag, "no-serial", "s", false,
		"Do not update the SOA serial number of changed zones")

	fs.BoolVar(&t.opts.logMinorFlag, "log-minor", false, "Log details of each zone loaded")
	fs.BoolVar(&t.opts.logDebugFlag, "log-debug", false,
		"Log every PTR decision - this implies --log-minor")
	fs.BoolVarP(&t.opts.quietFlag, "quiet", "q", false,
		"Only report warnings and errors - overrides --log-*")

	// Neither the standard "flag" package nor "spf13/pflag" complain about duplicate
	// options, so manage duplicates here. None of dnsrev's options make sense
	// more than once apart from the documentation ones.
	dupes := make(map[string]bool) // True means dupes are ok
	dupes["help"] = true
	dupes["version"] = true

	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)
				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed", f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})
	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	if helpFlag {
		printUsage(fs)
		return parseFailed
	}

	if versionFlag {
		printVersion()
		return parseStop
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(log.Out(), "Error: Unexpected goop on command line: '%s'\n",
			strings.Join(fs.Args(), " "))
		return parseFailed
	}

	return parseContinue
}

func printUsage(fs *flag.FlagSet) {
	o := log.Out()
	fmt.Fprintln(o, "NAME")
	fmt.Fprintln(o, " ", programName, "-- regenerate reverse DNS zonefiles from forward zonefiles")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "SYNOPSIS")
	fmt.Fprintln(o, "     dnsrev -h | --help | -v | --version")
	fmt.Fprintln(o, "     dnsrev [-c config] [-n] [-d] [-s] [-q] [--log-minor] [--log-debug]")
	fmt.Fprint(o, `
DESCRIPTION
     dnsrev refreshes the PTRs in existing reverse zonefiles from the A and AAAA
     records in a set of forward zonefiles. Each reverse zonefile is divided by a
     marker line. PTRs above the marker are maintained by hand and are never
     touched, everything below the marker is regenerated by dnsrev.

     All zonefiles have to exist already. dnsrev does not create reverse
     zonefiles from scratch, it only updates them.

     Zonefiles are normalized with named-compilezone so any syntax error in any
     zone aborts the run before anything is written.
`)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "OPTIONS")
	op := fs.Output()
	fs.SetOutput(o)
	fs.PrintDefaults()
	fs.SetOutput(op)

	fmt.Fprint(o, `
CONFIGURATION
     The configuration file is TOML, e.g.:

       normalizer = "compilezone"      # or "builtin"

       [[forward]]
       file   = "db.example.net"
       domain = "example.net"

       [[reverse]]
       file   = "db.192.168.0"
       subnet = "192.168.0.0/24"
       zone   = ""                     # optional explicit zone name

EXIT STATUS
     1 on help, on a bad or missing configuration, or on any zonefile error.
`)
	fmt.Fprintln(o)
	printVersion()
}
