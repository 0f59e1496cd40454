// Copyright (c) 2021, 2022 Mark Delany. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// This file exists so that "go doc github.com/markdingo/dnsrev" displays something
// useful.

/*

Package dnsrev keeps reverse DNS zonefiles in step with the A and AAAA records of a set
of forward zonefiles. The command lives in cmd/dnsrev.

Each reverse zonefile is split by a marker line. Everything above the marker is
maintained by hand, including any manual PTRs which always take precedence. Everything
below the marker is regenerated on each run and the SOA serial is advanced whenever the
generated block changes. All zonefiles are loaded and checked before any is replaced and
each replacement is an atomic rename.

Project site: https://github.com/markdingo/dnsrev

*/
package dnsrev
