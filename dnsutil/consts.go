package dnsutil

const (
	V4Suffix = ".in-addr.arpa." // The leading '.' is important here as some callers
	V6Suffix = ".ip6.arpa."     // rely on strings.HasSuffix() to label match.

	V4BitsPerLabel = 8 // in-addr.arpa labels are decimal octets
	V6BitsPerLabel = 4 // ip6.arpa labels are hex nibbles

	// ClasslessBoundary is the prefix length beyond which an ipv4 reverse zone is a
	// sub-/24 delegation in the style of rfc2317.
	ClasslessBoundary = 24
)
