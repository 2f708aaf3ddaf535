package diag

import (
	"testing"

	"github.com/leapstack-labs/shadergate/pkg/token"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Code:     CodeProfile,
		Severity: SeverityError,
		Message:  "'double' : not supported with this profile: es",
		Pos:      token.Position{Line: 4, Column: 2},
	}
	if got, want := d.String(), "error: 4:2: 'double' : not supported with this profile: es"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	d.Pos = token.Position{}
	if got, want := d.String(), "error: 'double' : not supported with this profile: es"; got != want {
		t.Fatalf("String() without position = %q, want %q", got, want)
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	c.Emit(Diagnostic{Severity: SeverityError, Message: "e1"})
	c.Emit(Diagnostic{Severity: SeverityWarning, Message: "w1"})
	c.Emit(Diagnostic{Severity: SeverityError, Message: "e2"})
	c.Emit(Diagnostic{Severity: SeverityInfo, Message: "i1"})

	if c.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", c.Len())
	}
	if c.ErrorCount() != 2 || !c.HasErrors() {
		t.Fatalf("ErrorCount() = %d, HasErrors() = %v", c.ErrorCount(), c.HasErrors())
	}
	if got := c.Errors(); len(got) != 2 || got[0].Message != "e1" || got[1].Message != "e2" {
		t.Fatalf("Errors() = %v", got)
	}
	if got := c.Warnings(); len(got) != 1 || got[0].Message != "w1" {
		t.Fatalf("Warnings() = %v", got)
	}

	all := c.All()
	all[0].Message = "mutated"
	if c.All()[0].Message != "e1" {
		t.Fatal("All() must return a copy")
	}

	c.Reset()
	if c.Len() != 0 || c.HasErrors() {
		t.Fatal("Reset() must clear state")
	}
}
