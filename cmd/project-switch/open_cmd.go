package main

import "github.com/spf13/cobra"

func newOpenCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:        "open <keyword> [args...]",
		Short:      "Launch a command without the prompt",
		Args:       cobra.MinimumNArgs(1),
		Hidden:     true,
		Deprecated: "use 'project-switch list <keyword> [args...]' instead",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.print, "print", "p", false, "Print the planned action instead of launching it")

	return cmd
}
