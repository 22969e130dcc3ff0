package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imagehost",
	Short: "Self-hosted image upload server",
	Long:  "Image hosting server that stores uploads on local disk and serves them through a pool of HTTP workers on consecutive ports.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
