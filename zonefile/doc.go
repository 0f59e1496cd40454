/*
Package zonefile models the zonefiles dnsrev reads and rewrites.

A reverse zonefile is split by the generated-content Marker into a hand-maintained header
and a machine-owned block of PTRs:

	$TTL 1h
	@  IN SOA ns1.example.net. hostmaster.example.net. 2024010100 3h 15m 1w 5m
	   IN NS  ns1.example.net.
	1  IN PTR gateway.example.net.

	;; ---- dnsrev.py ---- automatically generated, do not edit ---- dnsrev.py ----

	5.0.168.192.in-addr.arpa.                           IN PTR host1.example.net.

PTRs in the header are "manual" and always take precedence over anything derived from a
forward zone. Everything below the Marker is replaced whenever the derived PTRs change.
Forward zonefiles are only ever read.
*/
package zonefile
