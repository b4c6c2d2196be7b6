package cli

import (
	"fmt"

	"github.com/arthur-debert/frep/internal/version"
	"github.com/arthur-debert/frep/pkg/errors"
	"github.com/arthur-debert/frep/pkg/filesystem"
	"github.com/arthur-debert/frep/pkg/logging"
	"github.com/arthur-debert/frep/pkg/rename"
	"github.com/arthur-debert/frep/pkg/source"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const flagNoColor = "no-color"

// NewRootCmd creates and returns the root command, renaming on the OS filesystem
func NewRootCmd() *cobra.Command {
	return newRootCmd(filesystem.NewOS())
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:     "frep <find> <replace> <file_pattern...>",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    validateArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: verbosity,
				Console:   cmd.ErrOrStderr(),
				NoColor:   noColor,
			})
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			find, replace := args[0], args[1]

			src, err := source.Resolve(args[2:])
			if err != nil {
				return err
			}

			logger := logging.GetLogger("cmd.root")
			logger.Info().
				Str("find", find).
				Str("replace", replace).
				Str("source", src.String()).
				Msg("Starting rename")

			result, err := rename.Execute(src, rename.Options{
				Find:       find,
				Replace:    replace,
				FileSystem: fs,
				Output:     cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			logger.Info().Int("renamed", len(result.Renamed)).Msg("Rename finished")
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Arguments after <find> are never flags, so replace values and
	// shell-expanded file names may start with '-'
	rootCmd.Flags().SetInterspersed(false)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&noColor, flagNoColor, false, MsgFlagNoColor)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(fmt.Sprintf(MsgVersionTemplate, version.Version, version.Commit, version.Date))

	return rootCmd
}

// validateArgs requires find, replace and at least one file argument
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		return errors.Newf(errors.ErrUsage, MsgErrArgCount, len(args))
	}
	return nil
}
