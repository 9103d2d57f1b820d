package commands

import (
	"github.com/spf13/cobra"
)

// settings are the flags shared by the commands
type settings struct {
	configPath  string
	dataFile    string
	pageSize    int
	delay       string
	noToast     bool
	keepLoading bool
	logLevel    string
	logFile     string
	logPretty   bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	s := &settings{}

	rootCmd := &cobra.Command{
		Use:   "noticeboard [category]",
		Short: "Browse notices in the terminal",
		Long: "Browse notices by category with live search.\n" +
			"Notices are revealed a page at a time as you scroll.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd, s, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&s.configPath, "config", "c", "", "config file path (default is the user config dir)")
	flags.StringVarP(&s.dataFile, "data", "d", "", "JSON notices file (default is the built-in dataset)")

	rootCmd.Flags().IntVarP(&s.pageSize, "page-size", "n", 0, "notices revealed per page")
	rootCmd.Flags().StringVar(&s.delay, "delay", "", "simulated load delay, e.g. 1s or 250ms")
	rootCmd.Flags().BoolVar(&s.noToast, "no-toast", false, "do not show a confirmation after each page")
	rootCmd.Flags().BoolVar(&s.keepLoading, "keep-loading-on-search", false, "let a pending load finish when the query changes")
	rootCmd.Flags().StringVar(&s.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&s.logFile, "log-file", "", "log file path")
	rootCmd.Flags().BoolVar(&s.logPretty, "log-pretty", false, "write readable log lines instead of JSON")

	rootCmd.AddCommand(
		newCategoriesCommand(s),
		newInitConfigCommand(s),
	)

	return rootCmd
}
