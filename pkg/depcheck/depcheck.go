// Package depcheck is the standalone dependency prober: it checks the
// runtime, the package manager, the database engine and the installed
// package directories, and reports one readiness verdict.
package depcheck

import (
	"path/filepath"

	"github.com/vertti/devsetup/pkg/check"
	"github.com/vertti/devsetup/pkg/cmdcheck"
	"github.com/vertti/devsetup/pkg/dircheck"
	"github.com/vertti/devsetup/pkg/output"
)

// Install hints shown when a tool is missing.
const (
	NodeHint  = "Please install Node.js from https://nodejs.org/"
	NPMHint   = "npm should be installed with Node.js"
	MongoHint = "Please install MongoDB from https://www.mongodb.com/try/download/community"
)

// Report collects the individual results of one probe run.
type Report struct {
	Runtime        check.Result
	PackageManager check.Result
	Database       check.Result
	Directories    []check.Result
}

// DirectoriesOK reports whether every dependency directory exists.
func (r Report) DirectoriesOK() bool {
	return check.AllOK(r.Directories...)
}

// OK is the readiness verdict: every tool present and every directory present.
func (r Report) OK() bool {
	return r.Runtime.OK() && r.PackageManager.OK() && r.Database.OK() && r.DirectoriesOK()
}

// Prober runs the dependency checks.
type Prober struct {
	Root           string          // project root
	ModuleDirs     []string        // dependency directories relative to Root
	InstallCommand string          // shown when a directory is missing
	Runner         cmdcheck.Runner // injected for testing
	FS             dircheck.FileSystem
}

// Probe runs every check. Checks are independent; none aborts the others.
func (p *Prober) Probe() Report {
	report := Report{
		Runtime: (&cmdcheck.Check{
			Name:        "node",
			Label:       "Node.js",
			InstallHint: NodeHint,
			Runner:      p.Runner,
		}).Run(),
		PackageManager: (&cmdcheck.Check{
			Name:        "npm",
			Label:       "npm",
			InstallHint: NPMHint,
			Runner:      p.Runner,
		}).Run(),
		Database: (&cmdcheck.Check{
			Name:        "mongod",
			Label:       "MongoDB",
			Locate:      true,
			FirstLine:   true,
			InstallHint: MongoHint,
			Runner:      p.Runner,
		}).Run(),
	}

	for _, c := range p.directoryChecks() {
		report.Directories = append(report.Directories, c.Run())
	}
	return report
}

func (p *Prober) directoryChecks() []check.Checker {
	checks := make([]check.Checker, 0, len(p.ModuleDirs))
	for _, dir := range p.ModuleDirs {
		checks = append(checks, &dircheck.Check{
			Root:  p.Root,
			Path:  dir,
			Label: dirLabel(dir),
			FS:    p.FS,
		})
	}
	return checks
}

// Print writes the checklist and summary for report.
func (p *Prober) Print(out *output.Printer, report Report) {
	out.Line("Checking dependencies...")
	out.Blank()
	out.PrintResult(report.Runtime)
	out.PrintResult(report.PackageManager)
	out.PrintResult(report.Database)

	out.Blank()
	out.Line("Checking node_modules directories...")
	for _, r := range report.Directories {
		out.PrintResult(r)
	}

	out.Blank()
	out.Line("Summary:")
	if report.OK() {
		out.Success("All dependencies are installed and ready to use.")
		return
	}
	out.Failure("Some dependencies are missing or not properly installed.")
	out.Line("   Please fix the issues above before running the application.")

	if !report.DirectoriesOK() {
		out.Blank()
		out.Line("To install node_modules, run:")
		out.Line("%s", p.InstallCommand)
	}
}

// dirLabel turns "backend/node_modules" into "Backend node_modules".
func dirLabel(dir string) string {
	parent, base := filepath.Split(filepath.Clean(dir))
	parent = filepath.Base(filepath.Clean(parent))
	if parent == "." || parent == string(filepath.Separator) || parent == "" {
		return "Root " + base
	}
	return capitalize(parent) + " " + base
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
