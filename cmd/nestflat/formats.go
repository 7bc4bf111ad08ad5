package main

import (
	"fmt"
	"strings"

	"github.com/ehsanranjbar/nestutils/codec"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported document formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, f := range codec.Formats() {
			line := f.Name + "\t." + strings.Join(f.Extensions, " .")
			if f.KeyRequired {
				line += "\t(requires --key)"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
