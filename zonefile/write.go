package zonefile

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/markdingo/dnsrev/log"
)

type Outcome int

const (
	NoData   Outcome = iota // No derived PTRs so the zonefile is left alone
	NoChange                // Derived PTRs match the existing generated block
	Updated                 // Content needs replacing
)

func (t Outcome) String() string {
	switch t {
	case NoChange:
		return "No changes"
	case Updated:
		return "Updated"
	}

	return "No data"
}

const labelWidth = 50 // The owner name column of generated PTRs

// Update is the result of rendering a reverse ZoneFile. Nothing touches the file system
// until Commit is called.
type Update struct {
	Zone    *ZoneFile
	Outcome Outcome
	Serial  uint32   // New serial. Same as Zone.Serial if not updated
	Records []string // Rendered PTR lines in label order
	Content string   // Complete new file content when Outcome == Updated
}

// Records returns the rendered generated block for the Auto PTRs sorted by owner name.
func (t *ZoneFile) Records() []string {
	labels := make([]string, 0, len(t.Auto))
	for label := range t.Auto {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	recs := make([]string, 0, len(labels))
	for _, label := range labels {
		recs = append(recs, fmt.Sprintf("%-*s  IN PTR %s", labelWidth, label, t.Auto[label]))
	}

	return recs
}

// Render compares the Auto PTRs with the previously generated block and, if they differ,
// creates the new file content. If updateSerial is true the SOA serial in the header is
// replaced with the next serial for now, otherwise the header is used unchanged.
//
// An empty Auto always results in NoData even if a generated block previously existed.
// That block is left in place. Removing it is left to the operator.
func (t *ZoneFile) Render(now time.Time, updateSerial bool) (*Update, error) {
	up := &Update{Zone: t, Serial: t.Serial}
	if len(t.Auto) == 0 {
		up.Outcome = NoData
		return up, nil
	}

	up.Records = t.Records()
	if t.HasOldAuto && equalLines(up.Records, t.OldAuto) {
		up.Outcome = NoChange
		return up, nil
	}

	head := strings.TrimRight(t.Header, " \t\r\n")
	if updateSerial {
		up.Serial = NextSerial(t.Serial, now)
		var err error
		head, err = replaceSerial(head, t.Serial, up.Serial)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Path, err)
		}
	}

	var b strings.Builder
	b.WriteString(head)
	b.WriteString("\n\n")
	b.WriteString(Marker)
	b.WriteString("\n\n")
	b.WriteString(strings.Join(up.Records, "\n"))
	b.WriteString("\n")

	up.Content = b.String()
	up.Outcome = Updated

	return up, nil
}

// replaceSerial substitutes the first occurrence of the old serial following the SOA
// token. Comments are ignored when searching so neither an "SOA" nor a number within a
// comment can match. The rest of the header is untouched.
func replaceSerial(head string, old, serial uint32) (string, error) {
	re := regexp.MustCompile(`(?s)\b(SOA\b.*?)\b` + strconv.FormatUint(uint64(old), 10) + `\b`)
	loc := re.FindStringSubmatchIndex(maskComments(head))
	if loc == nil {
		return "", fmt.Errorf("could not find serial %d following SOA in header", old)
	}

	return head[:loc[3]] + strconv.FormatUint(uint64(serial), 10) + head[loc[1]:], nil
}

// maskComments returns s with every comment replaced by spaces. The result is the same
// length as s so offsets into it are valid offsets into s. A ';' within a quoted string
// or following a backslash does not start a comment.
func maskComments(s string) string {
	b := []byte(s)
	var inQuote, inComment, escaped bool
	for ix, c := range b {
		switch {
		case inComment:
			if c == '\n' {
				inComment = false
			} else {
				b[ix] = ' '
			}
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inQuote = !inQuote
		case c == '\n':
			inQuote = false
		case c == ';' && !inQuote:
			inComment = true
			b[ix] = ' '
		}
	}

	return string(b)
}

// Diff returns a unified diff of the zonefile as read against the new content. Empty if
// there is nothing to update.
func (t *Update) Diff() (string, error) {
	if t.Outcome != Updated {
		return "", nil
	}
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(t.Zone.Raw),
		B:        difflib.SplitLines(t.Content),
		FromFile: t.Zone.Path,
		ToFile:   t.Zone.Path + " (new)",
		Context:  3,
	}

	return difflib.GetUnifiedDiffString(ud)
}

// Commit writes the new content to a temporary file alongside the zonefile then renames
// it over the original. With dryRun the temporary file is written then removed so that
// the same failure modes are exercised without changing anything. Either way the
// original is never partially written and the temporary file never outlives Commit.
func (t *Update) Commit(dryRun bool) (err error) {
	if t.Outcome != Updated {
		return nil
	}
	zf := t.Zone

	mode := os.FileMode(0644)
	if fi, err := os.Stat(zf.Path); err == nil {
		mode = fi.Mode().Perm()
	}

	f, err := zf.createTemp()
	if err != nil {
		return err
	}
	tmp := f.Name()
	renamed := false
	defer func() {
		if !renamed {
			os.Remove(tmp)
		}
	}()

	_, err = f.WriteString(t.Content)
	if err == nil {
		err = f.Chmod(mode)
	}
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if dryRun {
		log.Debug("Dry run: not replacing ", zf.Path)
		return nil
	}

	err = os.Rename(tmp, zf.Path)
	if err != nil {
		return err
	}
	renamed = true

	return nil
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for ix := range a {
		if a[ix] != b[ix] {
			return false
		}
	}

	return true
}
