// Package main provides a generator that extracts the extension registry
// and diagnostic codes from shadergate source and generates markdown
// documentation.
//
// Usage:
//
//	go run ./scripts/gendocs -gen=extensions -outdir=docs
//	go run ./scripts/gendocs -gen=diagnostics -outdir=docs
//	go run ./scripts/gendocs -gen=all
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/shadergate/pkg/diag"
	"github.com/leapstack-labs/shadergate/pkg/extension"
)

var (
	genFlag    = flag.String("gen", "all", "what to generate: extensions, diagnostics, all")
	outDirFlag = flag.String("outdir", "", "output directory (defaults to docs/)")
)

func main() {
	flag.Parse()

	validGenFlags := map[string]bool{"extensions": true, "diagnostics": true, "all": true}
	if !validGenFlags[*genFlag] {
		log.Fatalf("unknown -gen value: %s (use: extensions, diagnostics, all)", *genFlag)
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		log.Fatalf("failed to find project root: %v", err)
	}

	outDir := *outDirFlag
	if outDir == "" {
		outDir = filepath.Join(projectRoot, "docs")
	}

	if *genFlag == "extensions" || *genFlag == "all" {
		if err := generateExtensionDocs(outDir); err != nil {
			log.Fatalf("failed to generate extension docs: %v", err)
		}
	}
	if *genFlag == "diagnostics" || *genFlag == "all" {
		if err := generateDiagnosticDocs(outDir); err != nil {
			log.Fatalf("failed to generate diagnostic docs: %v", err)
		}
	}
}

// findProjectRoot walks up from the working directory to the go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", dir)
		}
		dir = parent
	}
}

func generateExtensionDocs(outDir string) error {
	var b strings.Builder
	b.WriteString("# Extensions\n\n")
	b.WriteString("Every extension in the build-time registry, with its default behavior\n")
	b.WriteString("and the extensions an umbrella directive drags in.\n\n")
	b.WriteString("| Extension | Default | Implies |\n")
	b.WriteString("|-----------|---------|--------|\n")

	graph := extension.Implications()
	for _, id := range extension.All() {
		def, _ := extension.Default(id)
		implies := strings.Join(graph.Implied(id), ", ")
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", id, def, implies)
	}
	fmt.Fprintf(&b, "\n%d extensions.\n", extension.Count())

	return writeDoc(outDir, "extensions.md", b.String())
}

func generateDiagnosticDocs(outDir string) error {
	codes := []struct {
		code diag.Code
		desc string
	}{
		{diag.CodeProfile, "feature not supported with the active profile"},
		{diag.CodeVersionOrExtension, "feature not supported for this version or the enabled extensions"},
		{diag.CodeStage, "feature not supported in the active stage"},
		{diag.CodeDeprecated, "deprecated feature used"},
		{diag.CodeRemovedFeature, "feature removed from the active profile"},
		{diag.CodeMissingExtension, "required extension not requested"},
		{diag.CodeUnsupportedExtension, "directive names an unknown extension"},
		{diag.CodePartialSupport, "directive enables a partially supported extension"},
		{diag.CodeExtensionUsed, "warn-behavior extension permitted a feature"},
		{diag.CodeInvalidBehavior, "directive behavior token not recognized"},
		{diag.CodeInvalidAllBehavior, "'all' used with require or enable"},
		{diag.CodeNotImplemented, "feature recognized but not implemented"},
		{diag.CodeRequiresVulkan, "operation only allowed under Vulkan semantics"},
		{diag.CodeRequiresSpv, "operation only allowed when generating SPIR-V"},
		{diag.CodeRemovedUnderSpv, "operation not allowed when generating SPIR-V"},
		{diag.CodeRemovedUnderVulkan, "operation not allowed under Vulkan semantics"},
	}

	var b strings.Builder
	b.WriteString("# Diagnostic codes\n\n")
	b.WriteString("| Code | Meaning |\n")
	b.WriteString("|------|--------|\n")
	for _, c := range codes {
		fmt.Fprintf(&b, "| `%s` | %s |\n", c.code, c.desc)
	}

	return writeDoc(outDir, "diagnostics.md", b.String())
}

func writeDoc(outDir, name, content string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}
