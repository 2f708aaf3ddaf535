package diag

// Collector is a Sink that accumulates diagnostics in order of arrival.
// It is the default sink for one compile unit; the zero value is ready
// to use.
type Collector struct {
	diags []Diagnostic
}

// Emit appends the diagnostic.
func (c *Collector) Emit(d Diagnostic) {
	c.diags = append(c.diags, d)
}

// All returns every collected diagnostic in emission order.
func (c *Collector) All() []Diagnostic {
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Errors returns only the error-severity diagnostics.
func (c *Collector) Errors() []Diagnostic {
	return c.filter(SeverityError)
}

// Warnings returns only the warning-severity diagnostics.
func (c *Collector) Warnings() []Diagnostic {
	return c.filter(SeverityWarning)
}

func (c *Collector) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.diags {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// ErrorCount returns the number of error-severity diagnostics.
func (c *Collector) ErrorCount() int {
	n := 0
	for _, d := range c.diags {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// HasErrors reports whether any error was recorded.
func (c *Collector) HasErrors() bool {
	return c.ErrorCount() > 0
}

// Len returns the total number of diagnostics.
func (c *Collector) Len() int {
	return len(c.diags)
}

// Reset discards all collected diagnostics.
func (c *Collector) Reset() {
	c.diags = c.diags[:0]
}
