/*
Package log provides global output control for dnsrev. Logging comes in four levels:
Silent, Major, Minor and Debug with each level more detailed than the previous. Levels
are inclusive, so, e.g., if MinorLevel is set that implies MajorLevel logging.

dnsrev uses Major for the outcome of each reverse zone (updated, unchanged or no data)
and for duplicate mapping reports, Minor for the details of what was loaded from each
zonefile and Debug for each individual record decision made by the reconciler.

The Print and Printf interfaces are similar to the fmt versions with a few subtle
differences due to the need to prefix lines. If the resulting string contains multiple
lines they are all printed with the prefix for the logging level and a trailing newline
is not needed as excess ones are trimmed.

Output which is not governed by a level, such as diffs and usage, should be written to
log.Out() so that tests can capture it with SetOut().
*/
package log
