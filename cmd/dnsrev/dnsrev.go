package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/markdingo/dnsrev/config"
	"github.com/markdingo/dnsrev/log"
	"github.com/markdingo/dnsrev/normalizer"
	"github.com/markdingo/dnsrev/reconcile"
	"github.com/markdingo/dnsrev/zonefile"
)

// The dnsRev container holds everything a run needs so that main() stays a simple
// sequence of steps and so that tests can run the whole thing with a synthetic config.
type dnsRev struct {
	opts *options
	fs   *flag.FlagSet
	conf *config.Config

	normalizer normalizer.Normalizer // Set from conf unless already set by a test
	now        func() time.Time      // Date for the next SOA serial

	forward []*zonefile.ZoneFile
	reverse []*zonefile.ZoneFile

	stats runStats
}

type runStats struct {
	updated, unchanged, noData, duplicates int
}

func newDNSRev() *dnsRev {
	return &dnsRev{opts: newOptions(), now: time.Now}
}

// loadConfig reads the configuration file named on the command line.
func (t *dnsRev) loadConfig() error {
	conf, err := config.Load(t.opts.configPath)
	if err != nil {
		return err
	}
	t.conf = conf
	if t.normalizer == nil {
		t.normalizer = conf.NewNormalizer()
	}

	return nil
}

// loadZones loads every configured reverse then forward zone. Any error is fatal and
// nothing will have been written as writing only occurs once everything has loaded.
func (t *dnsRev) loadZones() error {
	for _, rz := range t.conf.Reverse {
		ipNet, err := rz.Network()
		if err != nil {
			return fmt.Errorf("%s: %w", rz.File, err)
		}
		zf, err := zonefile.LoadReverse(t.normalizer, rz.File, ipNet, rz.Zone)
		if err != nil {
			return err
		}
		t.reverse = append(t.reverse, zf)
	}

	for _, fz := range t.conf.Forward {
		zf, err := zonefile.LoadForward(t.normalizer, fz.File, fz.Domain)
		if err != nil {
			return err
		}
		if len(zf.Addresses) == 0 {
			warning(nil, fz.File, "contains no A or AAAA records")
		}
		t.forward = append(t.forward, zf)
	}

	return nil
}

// render produces an Update for every reverse zone. If any zone fails to render, no
// Updates are returned so no zone is written.
func (t *dnsRev) render() ([]*zonefile.Update, error) {
	now := t.now()
	updates := make([]*zonefile.Update, 0, len(t.reverse))
	for _, zf := range t.reverse {
		up, err := zf.Render(now, !t.opts.noSerialFlag)
		if err != nil {
			return nil, err
		}
		updates = append(updates, up)
	}

	return updates, nil
}

// apply reports on and commits each Update in configuration order.
func (t *dnsRev) apply(updates []*zonefile.Update) error {
	for _, up := range updates {
		path := up.Zone.Path
		switch up.Outcome {
		case zonefile.NoData:
			t.stats.noData++
			log.Major("No data for ", path)
			continue

		case zonefile.NoChange:
			t.stats.unchanged++
			log.Major("No changes for ", path)
			continue
		}

		t.stats.updated++
		if t.opts.noSerialFlag {
			log.Majorf("Updating %s, serial unchanged at %d", path, up.Serial)
		} else {
			log.Majorf("Updating %s, new serial %d", path, up.Serial)
		}
		log.Minorf("%s now has %d generated PTRs", path, len(up.Records))

		if t.opts.diffFlag {
			diff, err := up.Diff()
			if err != nil {
				return fmt.Errorf("%s: diff failed: %w", path, err)
			}
			fmt.Fprint(log.Out(), diff)
		}

		err := up.Commit(t.opts.dryRunFlag)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}

// run is everything after configuration has been loaded.
func (t *dnsRev) run() error {
	err := t.loadZones()
	if err != nil {
		return err
	}

	res := reconcile.Reconcile(t.forward, t.reverse)
	t.stats.duplicates = len(res.Duplicates)
	for _, d := range res.Duplicates {
		log.Major(d.String())
	}
	log.Minorf("Forward addresses: %d, PTRs generated: %d, manual overrides: %d, outside all reverse zones: %d",
		res.Considered, res.Added, res.Manual, res.Unmatched)

	updates, err := t.render()
	if err != nil {
		return err
	}

	err = t.apply(updates)
	if err != nil {
		return err
	}

	dry := ""
	if t.opts.dryRunFlag {
		dry = " (dry run)"
	}
	log.Minorf("Zones updated: %d, unchanged: %d, no data: %d, duplicates: %d%s",
		t.stats.updated, t.stats.unchanged, t.stats.noData, t.stats.duplicates, dry)

	return nil
}
