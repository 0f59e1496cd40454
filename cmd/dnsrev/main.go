package main

import (
	"os"

	"github.com/markdingo/dnsrev/log"
)

func fatal(err error, messages ...string) {
	log.Report("Fatal", err, messages...)
	os.Exit(1)
}

func warning(err error, messages ...string) {
	log.Report("Warning", err, messages...)
}

//////////////////////////////////////////////////////////////////////

func main() {
	dr := newDNSRev()
	switch dr.parseOptions(os.Args) {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	dr.opts.setLogLevel()

	// A missing or empty configuration is treated the same as a request for help
	err := dr.loadConfig()
	if err != nil {
		log.Report("Error", err)
		printUsage(dr.fs)
		os.Exit(1)
	}

	err = dr.run()
	if err != nil {
		fatal(err)
	}
}
