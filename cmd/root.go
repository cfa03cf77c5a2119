package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	if err != nil {
		rootCmd := baseRootCmd()
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	return newRootCmdWithApp(app)
}

func newRootCmdWithApp(app *app) *cobra.Command {
	rootCmd := baseRootCmd()
	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newProfileCmd(app),
	)

	return rootCmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "webclicker",
		Short: "Answer web polls automatically",
		Long: "webclicker keeps a browser open on a polling page, checks it at a fixed interval, " +
			"and clicks a random answer whenever a poll is active.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
}
