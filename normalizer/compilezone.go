package normalizer

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/markdingo/dnsrev/log"
)

const DefaultCompileZone = "/usr/sbin/named-compilezone"

// CompileZone normalizes zonefiles by running an external zone compiler which accepts
// the same arguments as BIND's named-compilezone, namely:
//
//	named-compilezone -o - zone-name file-name
//
// Output goes to stdout and a non-zero exit means the zonefile is bad.
type CompileZone struct {
	Program string // Path to the compiler. Defaults to DefaultCompileZone
}

func NewCompileZone(program string) *CompileZone {
	if len(program) == 0 {
		program = DefaultCompileZone
	}

	return &CompileZone{Program: program}
}

// Normalize runs the compiler to completion, one invocation at a time. Both stdout and
// stderr are fully drained before the exit status is examined.
func (t *CompileZone) Normalize(zone, path string) ([]string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(t.Program, "-o", "-", zone, path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("Exec: ", strings.Join(cmd.Args, " "))
	err := cmd.Run()
	if err != nil {
		diag := strings.TrimSpace(stderr.String())
		if len(diag) == 0 { // Some compilers complain on stdout
			diag = strings.TrimSpace(stdout.String())
		}
		if _, ok := err.(*exec.ExitError); !ok { // Couldn't even start
			err = fmt.Errorf("%s: %w", t.Program, err)
		}
		return nil, &Error{Zone: zone, Path: path, Diagnostic: diag, Err: err}
	}

	return splitLines(stdout.String()), nil
}

// splitLines splits on newlines but, like most line splitters, does not return an empty
// trailing line.
func splitLines(s string) []string {
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if len(s) == 0 {
		return []string{}
	}

	return strings.Split(s, "\n")
}
