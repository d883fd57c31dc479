package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hubkit",
		Short:         "hubkit: bootstrap DevHub auth for test harness runs",
		Long:          "hubkit picks a hub authentication strategy from TESTKIT_* environment variables (jwt, auth url, or reuse of an already-authenticated hub), prepares credential files, and drives the Salesforce CLI to authorize the hub.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}
