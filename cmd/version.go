package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the subtran version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("subtran " + version)
		},
	}
}
