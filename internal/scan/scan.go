// Package scan extracts "#version" and "#extension" lines from shader
// source. It is a setup collaborator for the gate, not a GLSL parser:
// everything that is not one of those two directives is ignored.
package scan

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leapstack-labs/shadergate/pkg/token"
)

// Directive is one "#extension <id> : <behavior>" line. A malformed line
// is preserved with its raw behavior token so the gate can diagnose it
// instead of the scanner aborting.
type Directive struct {
	Pos      token.Position
	ID       string
	Behavior string
}

// Result holds what the scanner found in one compile unit.
type Result struct {
	// Version is the #version number, or 0 when the source has no
	// #version line.
	Version int

	// Profile is the raw profile token following the version number
	// ("es", "core", "compatibility"), empty when absent.
	Profile string

	// VersionPos is the location of the #version line, if any.
	VersionPos token.Position

	Directives []Directive
}

// Source scans shader source for #version and #extension lines. Only
// I/O failures and a non-numeric #version return an error; malformed
// #extension lines are carried through for the gate to diagnose.
func Source(r io.Reader) (*Result, error) {
	res := &Result{}
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(text, "#") {
			continue
		}
		rest := strings.TrimSpace(text[1:])

		switch {
		case strings.HasPrefix(rest, "version"):
			fields := strings.Fields(rest[len("version"):])
			if len(fields) == 0 {
				return nil, fmt.Errorf("line %d: #version without a version number", line)
			}
			v, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid #version number %q", line, fields[0])
			}
			res.Version = v
			res.VersionPos = token.Position{Line: line}
			if len(fields) > 1 {
				res.Profile = fields[1]
			}

		case strings.HasPrefix(rest, "extension"):
			body := rest[len("extension"):]
			id, behavior := splitDirective(body)
			res.Directives = append(res.Directives, Directive{
				Pos:      token.Position{Line: line},
				ID:       id,
				Behavior: behavior,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// splitDirective splits "<id> : <behavior>". A missing colon yields an
// empty behavior token, which the gate rejects as unsupported.
func splitDirective(body string) (id, behavior string) {
	parts := strings.SplitN(body, ":", 2)
	id = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		behavior = strings.TrimSpace(parts[1])
	}
	return id, behavior
}
