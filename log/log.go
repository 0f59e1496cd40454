package log

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type logLevel int

const (
	SilentLevel logLevel = iota
	MajorLevel
	MinorLevel
	DebugLevel
)

var (
	majorPrefix = ""
	minorPrefix = "  "
	debugPrefix = "   Dbg:"

	out   io.Writer
	level logLevel
)

func init() {
	out = os.Stdout
	level = MajorLevel
}

func (t logLevel) String() string {
	switch t {
	case MajorLevel:
		return "Major"
	case MinorLevel:
		return "Minor"
	case DebugLevel:
		return "Debug"
	}

	return "Silent"
}

// SetOut changes the output of logging to the supplied io.Writer. The default is
// os.Stdout. The supplied io.Writer must never be nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	out = w
}

// Out returns the current io.Writer for output which is not controlled by log levels,
// such as diffs. The return value will never be nil.
func Out() io.Writer {
	return out
}

// SetLevel sets the current logging level. The default is MajorLevel.
func SetLevel(l logLevel) {
	level = l
}

func Level() logLevel {
	return level
}

// IfMajor returns true if Major logging is written to the output stream. Callers use the
// If* functions when evaluating the log arguments is expensive, e.g. sorting a map just
// to print it.
func IfMajor() bool {
	return level >= MajorLevel
}

func IfMinor() bool {
	return level >= MinorLevel
}

func IfDebug() bool {
	return level >= DebugLevel
}

// Majorf provides an approximate fmt.Printf equivalent interface to logging. Output is
// only generated if the level is >= Major. A newline is always added to the end of the
// output so the caller should not include one.
func Majorf(format string, a ...interface{}) (n int, err error) {
	if level >= MajorLevel {
		return prefixAndPrintLines(fmt.Sprintf(format, a...), majorPrefix)
	}

	return 0, nil
}

// Major provides a fmt.Print like interface to logging. It inherits the fmt.Sprint
// feature whereby spaces are only added between operands when neither is a string.
func Major(a ...interface{}) (n int, err error) {
	if level >= MajorLevel {
		return prefixAndPrintLines(fmt.Sprint(a...), majorPrefix)
	}

	return 0, nil
}

// Minorf provides a fmt.Printf equivalent interface to logging. Output is only generated
// if the level is >= Minor.
func Minorf(format string, a ...interface{}) (n int, err error) {
	if level >= MinorLevel {
		return prefixAndPrintLines(fmt.Sprintf(format, a...), minorPrefix)
	}

	return 0, nil
}

// Minor provides a fmt.Print like interface to logging. Output is only generated if the
// level is >= Minor. Minor uses fmt.Sprint to generate the output line thus it inherits
// the feature whereby spaces are added between operands when neither is a string.
func Minor(a ...interface{}) (n int, err error) {
	if level >= MinorLevel {
		return prefixAndPrintLines(fmt.Sprint(a...), minorPrefix)
	}

	return 0, nil
}

// Debugf provides a fmt.Printf equivalent interface to logging. Output is only generated
// if the level is >= Debug.
func Debugf(format string, a ...interface{}) (n int, err error) {
	if level >= DebugLevel {
		return prefixAndPrintLines(fmt.Sprintf(format, a...), debugPrefix)
	}

	return 0, nil
}

// Debug provides a fmt.Print like interface to logging. Output is only generated if the
// level is >= Debug. Debug uses fmt.Sprint to generate the output line thus it inherits
// the feature whereby spaces are added between operands when neither is a string.
func Debug(a ...interface{}) (n int, err error) {
	if level >= DebugLevel {
		return prefixAndPrintLines(fmt.Sprint(a...), debugPrefix)
	}

	return 0, nil
}

// Report writes a severity-tagged message to Out() regardless of the current level. It
// is used for warnings and fatal errors which must never be silenced. The format is
// "severity: messages: err" with absent parts omitted.
func Report(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	prefixAndPrintLines(msg, "")
}

// prefixAndPrintLines takes potentially multiple lines and sends them to the out stream
// with each line prefixed by the supplied prefix.
func prefixAndPrintLines(lines, prefix string) (int, error) {
	if !strings.Contains(lines, "\n") { // Expect this to be the common case
		return fmt.Fprint(out, prefix, lines, "\n")
	}

	ar := strings.Split(lines, "\n")
	for len(ar) > 0 && len(ar[len(ar)-1]) == 0 { // Chomp trailing empty lines
		ar = ar[:len(ar)-1]
	}

	s := strings.Join(ar, "\n"+prefix)

	return fmt.Fprint(out, prefix, s, "\n")
}
