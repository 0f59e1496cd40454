package zonefile

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/dnsrev/dnsutil"
	"github.com/markdingo/dnsrev/log"
	"github.com/markdingo/dnsrev/normalizer"
)

// Marker separates the hand-maintained header from the generated block. It must never
// change as existing zonefiles rely on it.
const Marker = ";; ---- dnsrev.py ---- automatically generated, do not edit ---- dnsrev.py ----"

type Kind int

const (
	Forward Kind = iota
	Reverse
)

func (t Kind) String() string {
	if t == Reverse {
		return "reverse"
	}

	return "forward"
}

// Address is an A or AAAA found in a forward zone.
type Address struct {
	Name string // Fully qualified owner name
	Type uint16 // dns.TypeA or dns.TypeAAAA
	IP   net.IP
}

// IsIP6 returns true if the address came from an AAAA. That remains true for an
// ipv4-mapped address even though net.IP treats it as ipv4.
func (t Address) IsIP6() bool {
	return t.Type == dns.TypeAAAA
}

// ZoneFile is the working state for one zonefile. It is fully populated by LoadForward or
// LoadReverse, apart from Auto which is populated by the reconciler.
type ZoneFile struct {
	Kind Kind
	Path string
	Zone string // Fully qualified zone name used as the origin

	// Forward only
	Addresses []Address

	// Reverse only
	Subnet     *net.IPNet
	Manual     map[string]string // Reverse name -> target from PTRs in the header
	Auto       map[string]string // Reverse name -> target derived from forward zones
	Raw        string            // Complete file content as read
	Header     string            // Everything prior to the Marker
	Serial     uint32            // From the SOA in the header
	OldAuto    []string          // Lines following the Marker. nil if no Marker.
	HasOldAuto bool
}

// LoadForward normalizes the whole forward zonefile and extracts all address records.
func LoadForward(n normalizer.Normalizer, path, zone string) (*ZoneFile, error) {
	zf := &ZoneFile{Kind: Forward, Path: path, Zone: dns.CanonicalName(zone)}
	lines, err := n.Normalize(zf.Zone, path)
	if err != nil {
		return nil, err
	}

	s := NewMatcher(dns.TypeA, dns.TypeAAAA).Scan(lines)
	for rec, ok := s.Next(); ok; rec, ok = s.Next() {
		ip := net.ParseIP(rec.Rdata)
		if ip == nil {
			log.Debug("Ignoring unparseable address ", rec.Rdata, " for ", rec.Label)
			continue
		}
		zf.Addresses = append(zf.Addresses, Address{Name: rec.Label, Type: rec.Type, IP: ip})
	}

	log.Minorf("Loaded forward %s zone %s: %d addresses", path, zf.Zone, len(zf.Addresses))

	return zf, nil
}

// LoadReverse reads the reverse zonefile, splits it at the Marker and extracts the manual
// PTRs and the SOA serial from the header. Only the header is normalized, the generated
// block is retained as-is for later comparison.
//
// If zone is empty the zone name is derived from the subnet.
func LoadReverse(n normalizer.Normalizer, path string, subnet *net.IPNet, zone string) (*ZoneFile, error) {
	if len(zone) == 0 {
		zone = dnsutil.SubnetToReverseZone(subnet)
		if len(zone) == 0 {
			return nil, fmt.Errorf("cannot derive reverse zone name for %s", subnet)
		}
	}
	zf := &ZoneFile{
		Kind:   Reverse,
		Path:   path,
		Zone:   dns.CanonicalName(zone),
		Subnet: subnet,
		Manual: make(map[string]string),
		Auto:   make(map[string]string),
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	zf.Raw = string(b)

	parts := strings.Split(zf.Raw, Marker)
	if len(parts) > 2 {
		return nil, fmt.Errorf("%s contains %d generated-content markers, expected at most one",
			path, len(parts)-1)
	}
	zf.Header = parts[0]
	if len(parts) == 2 {
		zf.HasOldAuto = true
		zf.OldAuto = splitLines(strings.TrimSpace(parts[1]))
	}

	lines, err := zf.normalizeHeader(n)
	if err != nil {
		return nil, err
	}

	var soaFound bool
	s := NewMatcher(dns.TypePTR, dns.TypeSOA).Scan(lines)
	for rec, ok := s.Next(); ok; rec, ok = s.Next() {
		switch rec.Type {
		case dns.TypePTR:
			zf.Manual[dns.CanonicalName(rec.Label)] = rec.Rdata
		case dns.TypeSOA:
			if soaFound {
				log.Debug("Ignoring additional SOA in ", path)
				continue
			}
			zf.Serial, err = soaSerial(rec.Rdata)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			soaFound = true
		}
	}
	if !soaFound {
		return nil, fmt.Errorf("%s: no SOA found in zone %s", path, zf.Zone)
	}

	log.Minorf("Loaded reverse %s zone %s: %d manual PTRs, %d generated, serial %d",
		path, zf.Zone, len(zf.Manual), len(zf.OldAuto), zf.Serial)

	return zf, nil
}

// normalizeHeader writes the header to a scratch file alongside the zonefile, so that any
// relative $INCLUDEs still work, and normalizes it. The scratch file is always removed.
func (t *ZoneFile) normalizeHeader(n normalizer.Normalizer) ([]string, error) {
	f, err := t.createTemp()
	if err != nil {
		return nil, err
	}
	defer os.Remove(f.Name())

	_, err = f.WriteString(t.Header)
	if err == nil {
		err = f.Close()
	} else {
		f.Close()
	}
	if err != nil {
		return nil, err
	}

	return n.Normalize(t.Zone, f.Name())
}

// createTemp creates a temporary file in the same directory as the zonefile with a name
// derived from the zonefile name. Same directory is a requirement for an atomic rename.
func (t *ZoneFile) createTemp() (*os.File, error) {
	dir, base := filepath.Split(t.Path)
	if len(dir) == 0 {
		dir = "."
	}

	return os.CreateTemp(dir, base+".")
}

// Contains returns true if the reverse zone's subnet contains the address. An A never
// matches an ipv6 zone and an AAAA never matches an ipv4 zone.
func (t *ZoneFile) Contains(a Address) bool {
	if t.Subnet == nil || a.IsIP6() != dnsutil.IsIP6Net(t.Subnet) {
		return false
	}
	if !a.IsIP6() {
		return t.Subnet.Contains(a.IP)
	}

	// net.IPNet.Contains treats an ipv4-mapped address as ipv4 so compare all 16 bytes
	ip := a.IP.To16()
	network := t.Subnet.IP.To16()
	if ip == nil || network == nil {
		return false
	}

	return ip.Mask(t.Subnet.Mask).Equal(network)
}

// ReverseName returns the name ip has within this reverse zone.
func (t *ZoneFile) ReverseName(ip net.IP) string {
	return dnsutil.ReverseQNameInZone(ip, t.Subnet, t.Zone)
}

// soaSerial extracts the serial which is the third field of the SOA rdata.
func soaSerial(rdata string) (uint32, error) {
	fields := strings.Fields(rdata)
	if len(fields) < 3 {
		return 0, fmt.Errorf("malformed SOA '%s'", rdata)
	}
	v, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad SOA serial '%s': %w", fields[2], err)
	}

	return uint32(v), nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if len(s) == 0 {
		return []string{}
	}

	return strings.Split(s, "\n")
}
