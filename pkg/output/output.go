// Package output renders check results and wizard status lines.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/devsetup/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, dim, reset = "", "", "", "", ""
	}
}

// Printer writes user-facing output.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to w; nil means stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// PrintResult outputs a check result with colored status. Details are
// aligned under the name; remediation hints follow the details.
func (p *Printer) PrintResult(r check.Result) {
	indent := "     "
	if r.OK() {
		p.printf("%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		p.printf("%s[FAIL]%s %s\n", red, reset, r.Name)
		indent = "       "
	}
	for _, d := range r.Details {
		p.printf("%s%s\n", indent, formatLabel(d))
	}
	for _, h := range r.Hints() {
		p.printf("%s%s\n", indent, formatLabel("hint: "+h))
	}
}

// Line prints a plain line.
func (p *Printer) Line(format string, args ...any) {
	p.printf(format+"\n", args...)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	p.printf("\n")
}

// Heading prints a stage banner preceded by a blank line.
func (p *Printer) Heading(icon, msg string) {
	p.printf("\n%s %s\n", icon, msg)
}

// Success prints a success line.
func (p *Printer) Success(format string, args ...any) {
	p.printf("%s✅%s %s\n", green, reset, fmt.Sprintf(format, args...))
}

// Warning prints a warning line.
func (p *Printer) Warning(format string, args ...any) {
	p.printf("%s⚠️%s  %s\n", yellow, reset, fmt.Sprintf(format, args...))
}

// Failure prints a failure line.
func (p *Printer) Failure(format string, args ...any) {
	p.printf("%s❌%s %s\n", red, reset, fmt.Sprintf(format, args...))
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

// formatLabel dims a leading "label:" prefix.
func formatLabel(s string) string {
	i := strings.Index(s, ": ")
	if i <= 0 || strings.ContainsAny(s[:i], " /") {
		return s
	}
	return dim + s[:i+1] + reset + s[i+1:]
}
