package dnsutil

import (
	"fmt"
	"net"
	"strings"

	"github.com/miekg/dns"
)

// IPToReverseQName converts an IP address into the reverse string normally looked up in
// the reverse path. It includes the reverse suffix, is fully qualified and is always lower
// case.
//
// An empty string is returned if the IP address cannot be interpreted.
func IPToReverseQName(ip net.IP) string {
	if ip == nil {
		return ""
	}
	if ip4 := ip.To4(); ip4 != nil {
		return fmt.Sprintf("%d.%d.%d.%d%s", ip4[3], ip4[2], ip4[1], ip4[0], V4Suffix)
	}

	return IP6ToReverseQName(ip)
}

// IP6ToReverseQName always returns the ip6.arpa nibble form, even for an ipv4 or
// ipv4-mapped address. An empty string is returned if the IP address cannot be
// interpreted.
func IP6ToReverseQName(ip net.IP) string {
	ip6 := ip.To16()
	if ip6 == nil {
		return ""
	}

	joiner := make([]string, 0, 32)
	for ix := 15; ix >= 0; ix-- {
		joiner = append(joiner, fmt.Sprintf("%x", ip6[ix]&0xf))
		joiner = append(joiner, fmt.Sprintf("%x", ip6[ix]&0xf0>>4))
	}

	return strings.Join(joiner, ".") + V6Suffix
}

// IsIP6Net returns true if ipNet is an ipv6 network, as determined by its mask. An
// ipv4-mapped ipv6 network such as ::ffff:0:0/96 is an ipv6 network.
func IsIP6Net(ipNet *net.IPNet) bool {
	if ipNet == nil {
		return false
	}
	_, bits := ipNet.Mask.Size()

	return bits == 8*net.IPv6len
}

// SubnetToReverseZone derives the reverse zone name for a subnet. The full reverse name
// of the network address is calculated then the labels covering the masked-out bits are
// removed from the front. Partial labels are kept, so 10.1.0.0/20 becomes
// 0.1.10.in-addr.arpa. and 2001:db8::/30 becomes 8.b.d.0.1.0.0.2.ip6.arpa.
//
// An empty string is returned if the network cannot be interpreted.
func SubnetToReverseZone(ipNet *net.IPNet) string {
	if ipNet == nil {
		return ""
	}
	ones, bits := ipNet.Mask.Size()
	if bits == 0 { // Non-canonical mask
		return ""
	}
	full := IPToReverseQName(ipNet.IP)
	perLabel := V4BitsPerLabel
	if IsIP6Net(ipNet) {
		full = IP6ToReverseQName(ipNet.IP)
		perLabel = V6BitsPerLabel
	}
	if len(full) == 0 {
		return ""
	}
	strip := (bits - ones) / perLabel

	labels := dns.SplitDomainName(full)
	if strip >= len(labels) {
		return "."
	}

	return dns.Fqdn(strings.Join(labels[strip:], "."))
}

// IsClassless returns true if the network is an ipv4 network finer than a /24, which
// means its reverse zone uses rfc2317 <octet>.<zone> labels.
func IsClassless(ipNet *net.IPNet) bool {
	if ipNet == nil || ipNet.IP.To4() == nil {
		return false
	}
	ones, bits := ipNet.Mask.Size()

	return bits == 8*net.IPv4len && ones > ClasslessBoundary
}

// ClasslessReverseQName returns the rfc2317 label for an ipv4 address within a classless
// reverse zone, namely the last octet prepended to the zone name. Return an empty string
// if ip is not ipv4.
func ClasslessReverseQName(ip net.IP, zone string) string {
	ip4 := ip.To4()
	if ip4 == nil {
		return ""
	}

	return fmt.Sprintf("%d.%s", ip4[3], dns.CanonicalName(zone))
}

// ReverseQNameInZone returns the reverse name for ip as it appears within the reverse
// zone for ipNet. That is the classless label when ipNet is classless and the standard
// reverse name otherwise. The caller is expected to have already checked that ipNet
// contains ip.
func ReverseQNameInZone(ip net.IP, ipNet *net.IPNet, zone string) string {
	if IsClassless(ipNet) {
		return ClasslessReverseQName(ip, zone)
	}
	if IsIP6Net(ipNet) {
		return IP6ToReverseQName(ip)
	}

	return IPToReverseQName(ip)
}
