// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tcamgen

package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var completionExample = `
# Load the tcamgen completion code for bash into the current shell
	source <(tcamgen completion bash)
# Write bash completion code to a file and source it from .bash_profile
	tcamgen completion bash > ~/.tcamgen/completion.bash.inc`

func newCompletionCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "completion [bash]",
		Short:     "Output shell completion code for bash",
		Example:   completionExample,
		ValidArgs: []string{"bash"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("too many arguments, expected only the shell type")
			}
			return cmd.Parent().GenBashCompletion(out)
		},
	}
	return cmd
}
