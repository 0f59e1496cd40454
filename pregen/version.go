/*

Package pregen contains values which are generated as part of the release process and
compiled into the dnsrev executable.

*/
package pregen

const (
	// Version is auto-generated from ChangeLog.md
	Version = "v1.0.0"
	// ReleaseDate is also auto-generated from ChangeLog.md
	ReleaseDate = "2026-10-14"
)
