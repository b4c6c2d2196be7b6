package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/frep/internal/version"
	"github.com/arthur-debert/frep/pkg/errors"
	"github.com/arthur-debert/frep/pkg/ui"
	"github.com/arthur-debert/frep/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// ExitCode is the process status for any failed run
const ExitCode = 1

// ReportError writes the diagnostic for err to the command's error stream
func ReportError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	reg := styles.New(styles.NewRenderer(w, plainOutput(cmd, w)))

	switch errors.GetErrorCode(err) {
	case errors.ErrUsage:
		name := cmd.Root().Name()
		fmt.Fprintf(w, MsgUsageBanner, name, version.Version, name)
	case errors.ErrInvalidPattern:
		pattern, _ := errors.GetErrorDetails(err)["pattern"].(string)
		fmt.Fprintln(w, reg.Render("Error", fmt.Sprintf(MsgErrInvalidPattern, pattern, errors.Cause(err))))
	case errors.ErrRename:
		fmt.Fprintln(w, reg.Render("Error", fmt.Sprintf(MsgErrRenaming, errors.Cause(err))))
	default:
		fmt.Fprintln(w, reg.Render("Error", fmt.Sprintf(MsgErrGeneric, errors.Cause(err))))
		fmt.Fprintln(w, reg.Render("Muted", fmt.Sprintf(MsgErrUsageHint, cmd.Root().Name())))
	}
}

// plainOutput reports whether diagnostics written to w must not be styled
func plainOutput(cmd *cobra.Command, w io.Writer) bool {
	if noColor, err := cmd.Root().PersistentFlags().GetBool(flagNoColor); err == nil && noColor {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return ui.DetectFormat(f) != ui.FormatTerminal
}
