/*
Package normalizer converts a zonefile into canonical text with one resource record per
line, each line being of the form:

	<owner-name>. [TTL] IN <TYPE> <rdata>

All relative names are expanded, directives such as $ORIGIN, $TTL and $INCLUDE are
resolved and multi-line records are joined. Callers can then scan the output with simple
patterns rather than having to understand the full zonefile grammar.

Two implementations are provided. CompileZone runs an external zone compiler, normally
BIND's named-compilezone, which also validates the zone. Builtin uses the miekg/dns zone
parser in-process and is mainly of use where BIND is not installed.
*/
package normalizer
