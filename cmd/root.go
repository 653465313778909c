package cmd

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "solrqstat",
	Short: "Solr query-log statistics tool",
	Long: `Command line tool that scans a batch of Solr log files, groups name-search
queries by their normalized pattern and reports QTime statistics per pattern
plus distinct WARN message counts.`,
	Run: func(cmd *cobra.Command, args []string) {
		// fall back on default help if no args/flags are passed.
		cmd.HelpFunc()(cmd, args)
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)
}
