package main

import (
	"github.com/spf13/cobra"
)

const rootLong = `Cleantext keeps only CJK ideographs (U+4E00-U+9FA5), ASCII letters and
digits, whitespace and a fixed set of Latin and CJK punctuation marks, trims
every line and drops lines that end up empty.

The result is written next to the input with "_cleaned" inserted before the
extension, for example notes.txt -> notes_cleaned.txt. Output lines always
end with "\n".

"config" and "help" are subcommands. To clean a file with one of those names,
give it a path: cleantext ./config`

func newRootCommand() *cobra.Command {
	var configFlag string
	flags := &cleanFlags{}

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "cleantext <input_file>",
		Short:         "Strip a text file down to CJK, ASCII alphanumerics and common punctuation",
		Long:          rootLong,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, ctx, flags, args[0])
		},
	}
	rootCmd.SetFlagErrorFunc(flagUsageError)

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.register(rootCmd)

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
