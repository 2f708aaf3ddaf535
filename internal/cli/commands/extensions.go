package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/shadergate/internal/cli/output"
	"github.com/leapstack-labs/shadergate/pkg/extension"
	"github.com/spf13/cobra"
)

// extensionInfo is the JSON shape for one registry entry.
type extensionInfo struct {
	ID      string   `json:"id"`
	Default string   `json:"default"`
	Implies []string `json:"implies,omitempty"`
}

// NewExtensionsCommand creates the extensions command.
func NewExtensionsCommand() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "List the extensions known to the gate",
		Long: `List every extension in the build-time registry with its default
behavior and, for umbrella extensions, the extensions it implies.

Output adapts to environment:
  - Terminal: table output
  - Piped/Scripted: Markdown table
  - JSON: machine-readable format`,
		Example: `  # List all known extensions
  shadergate extensions

  # Only the Android Extension Pack family
  shadergate extensions --filter AEP

  # As JSON
  shadergate extensions -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := loadJob(cmd)
			if err != nil {
				return err
			}
			r := newRenderer(cmd, job)
			return runExtensions(r, filter)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Only show extensions whose id contains this substring")
	return cmd
}

func runExtensions(r *output.Renderer, filter string) error {
	graph := extension.Implications()

	var infos []extensionInfo
	for _, id := range extension.All() {
		if filter != "" && !strings.Contains(strings.ToLower(id), strings.ToLower(filter)) {
			continue
		}
		def, _ := extension.Default(id)
		infos = append(infos, extensionInfo{
			ID:      id,
			Default: def.String(),
			Implies: graph.Implied(id),
		})
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(infos)
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Extension", "Default", "Implies"})
	for _, info := range infos {
		t.AppendRow(table.Row{info.ID, info.Default, strings.Join(info.Implies, "\n")})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	r.Printf("\n%d extensions\n", len(infos))
	return nil
}
