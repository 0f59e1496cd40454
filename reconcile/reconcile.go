/*
Package reconcile derives the generated PTRs for each reverse zone from the address
records of the forward zones.
*/
package reconcile

import (
	"fmt"
	"net"

	"github.com/markdingo/dnsrev/log"
	"github.com/markdingo/dnsrev/zonefile"
)

// Duplicate describes a forward name which was not used because an earlier forward name
// had already claimed the same reverse name.
type Duplicate struct {
	IP       net.IP
	Label    string // Reverse name both map to
	Name     string // Rejected forward name
	Existing string // Forward name which was kept
	Zone     *zonefile.ZoneFile
}

func (t Duplicate) String() string {
	return fmt.Sprintf("Duplicate entry, two names for %s in %s: kept %s, ignored %s",
		t.IP, t.Zone.Path, t.Existing, t.Name)
}

// Result summarizes a Reconcile run.
type Result struct {
	Considered int // Forward addresses examined
	Added      int // Auto PTRs created across all reverse zones
	Manual     int // Matches suppressed by a manual PTR
	Unmatched  int // Forward addresses not within any reverse zone
	Duplicates []Duplicate
}

// Reconcile rebuilds the Auto map of every reverse zone from the forward zones. Forward
// zones and their addresses are processed in order so the first forward name for a
// reverse name wins. An address may appear in any number of reverse zones if their
// subnets overlap and each zone is populated independently.
//
// Reverse names present in a zone's Manual map are never added to Auto and never reported
// as duplicates. A forward name which maps to a reverse name already holding the *same*
// forward name is not reported either, only differing names are duplicates.
func Reconcile(forward, reverse []*zonefile.ZoneFile) *Result {
	res := &Result{}
	for _, rev := range reverse {
		rev.Auto = make(map[string]string)
	}

	for _, fwd := range forward {
		for _, addr := range fwd.Addresses {
			res.Considered++
			matched := false
			for _, rev := range reverse {
				if !rev.Contains(addr) {
					continue
				}
				matched = true
				label := rev.ReverseName(addr.IP)
				if _, ok := rev.Manual[label]; ok {
					log.Debug("Manual PTR exists for ", addr.IP, " in ", rev.Path)
					res.Manual++
					continue
				}
				existing, ok := rev.Auto[label]
				if !ok {
					rev.Auto[label] = addr.Name
					res.Added++
					log.Debugf("Auto %s -> %s in %s", label, addr.Name, rev.Path)
					continue
				}
				if existing == addr.Name {
					continue
				}
				res.Duplicates = append(res.Duplicates, Duplicate{
					IP: addr.IP, Label: label, Name: addr.Name, Existing: existing, Zone: rev,
				})
			}
			if !matched {
				res.Unmatched++
				log.Debug("No reverse zone for ", addr.Name, " ", addr.IP)
			}
		}
	}

	return res
}
