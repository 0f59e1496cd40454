package main

import (
	"fmt"

	"github.com/markdingo/dnsrev/config"
	"github.com/markdingo/dnsrev/log"
	"github.com/markdingo/dnsrev/pregen"
)

const (
	programName       = "dnsrev"
	defaultProjectURL = "https://github.com/markdingo/dnsrev"
)

// options are the command-line settings. Zone lists come from the configuration file, not
// the command line.
type options struct {
	configPath string

	dryRunFlag   bool // Compute and diff but never replace a zonefile
	diffFlag     bool // Print a unified diff of each change
	noSerialFlag bool // Leave the SOA serial alone

	logMinorFlag bool
	logDebugFlag bool
	quietFlag    bool
}

func newOptions() *options {
	return &options{configPath: config.DefaultPath}
}

// setLogLevel transfers the logging flags to the log package. Quiet wins over everything.
func (t *options) setLogLevel() {
	switch {
	case t.quietFlag:
		log.SetLevel(log.SilentLevel)
	case t.logDebugFlag:
		log.SetLevel(log.DebugLevel)
	case t.logMinorFlag:
		log.SetLevel(log.MinorLevel)
	default:
		log.SetLevel(log.MajorLevel)
	}
}

func printVersion() {
	fmt.Fprintf(log.Out(), "Program:     %s %s (%s)\n", programName, pregen.Version, pregen.ReleaseDate)
	fmt.Fprintf(log.Out(), "Project:     %s\n", defaultProjectURL)
}
