package cli

import (
	"os"
	"text/template"

	"github.com/arthur-debert/frep/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(cmd *cobra.Command, s string) string {
	// Only apply formatting if the command writes to a terminal
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || ui.DetectFormat(f) != ui.FormatTerminal {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold": formatBold,
	})
}
