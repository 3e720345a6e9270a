package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version defines the application version (defined at compile time)
	Version = ""
	Commit  = ""
	Dirty   = ""
)

type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Go      string `json:"go" yaml:"go"`
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the oapp-graph version info",
		RunE: func(cmd *cobra.Command, args []string) error {
			commit := Commit
			if Dirty != "" && Dirty != "0" {
				commit += " (dirty)"
			}

			return printOutput(cmd, versionInfo{
				Version: Version,
				Commit:  commit,
				Go:      fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
			})
		},
	}
	addJsonFlag(cmd)
	return cmd
}
