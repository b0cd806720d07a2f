package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/vertti/devsetup/pkg/check"
	"github.com/vertti/devsetup/pkg/testutil"
)

func noColor(t *testing.T) {
	t.Helper()
	oldGreen, oldRed, oldYellow, oldDim, oldReset := green, red, yellow, dim, reset
	green, red, yellow, dim, reset = "", "", "", "", ""
	t.Cleanup(func() { green, red, yellow, dim, reset = oldGreen, oldRed, oldYellow, oldDim, oldReset })
}

func TestFormatLabel(t *testing.T) {
	oldDim, oldReset := dim, reset
	defer func() { dim, reset = oldDim, oldReset }()

	dim, reset = "[DIM]", "[RESET]"

	tests := []struct {
		input string
		want  string
	}{
		{"version: v18.17.0", "[DIM]version:[RESET] v18.17.0"},
		{"path: /usr/bin/node", "[DIM]path:[RESET] /usr/bin/node"},
		{"no colon here", "no colon here"},
		{"Node.js is not installed or not in PATH", "Node.js is not installed or not in PATH"},
		{"error: dial tcp: refused", "[DIM]error:[RESET] dial tcp: refused"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := formatLabel(tt.input); got != tt.want {
			t.Errorf("formatLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPrintResultOK(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer

	New(&buf).PrintResult(testutil.OKResult("cmd: node", "Node.js is installed", "version: v18.17.0"))

	expected := "[OK] cmd: node\n     Node.js is installed\n     version: v18.17.0\n"
	if buf.String() != expected {
		t.Errorf("PrintResult output = %q, want %q", buf.String(), expected)
	}
}

func TestPrintResultFailWithHint(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer

	New(&buf).PrintResult(check.Result{
		Name:    "cmd: npm",
		Status:  check.StatusFail,
		Details: []string{"npm is not installed or not in PATH"},
		Err:     errors.WithHint(errors.New("missing"), "npm should be installed with Node.js"),
	})

	expected := "[FAIL] cmd: npm\n       npm is not installed or not in PATH\n       hint: npm should be installed with Node.js\n"
	if buf.String() != expected {
		t.Errorf("PrintResult output = %q, want %q", buf.String(), expected)
	}
}

func TestStatusLines(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	p := New(&buf)

	p.Heading("📦", "Installing dependencies...")
	p.Success("Dependencies installed successfully.")
	p.Warning("MongoDB connection failed.")
	p.Failure("Failed to install %s.", "dependencies")
	p.Blank()
	p.Line("- Backend: %s", "http://localhost:5000")

	out := buf.String()
	for _, want := range []string{
		"\n📦 Installing dependencies...\n",
		"✅ Dependencies installed successfully.\n",
		"⚠️  MongoDB connection failed.\n",
		"❌ Failed to install dependencies.\n",
		"\n- Backend: http://localhost:5000\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
