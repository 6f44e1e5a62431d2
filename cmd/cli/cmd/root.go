package cmd

import (
	"context"
	"os"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/cmd/setup"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/graceful"
	"bitbucket.org/Amartha/go-emi-collection/internal/config"

	"github.com/spf13/cobra"
)

const configFlag = "config"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "emi-collection",
	Short:        "EMI collection is a collector tool for loan installments",
	Long:         `Lists the loan directory of the collection service and submits EMI payments against it.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP(configFlag, "c", "", "path to a config file, default searches config.{json,yaml}")

	rootCmd.AddCommand(loansCmd, payCmd, serveCmd)

	payCmd.Flags().StringP(payAccountFlag, "a", "", "loan account number")
	payCmd.Flags().StringP(payAmountFlag, "m", "", "amount to pay, e.g. 2500.50")
	_ = payCmd.MarkFlagRequired(payAccountFlag)
	_ = payCmd.MarkFlagRequired(payAmountFlag)
}

// initSetup wires the application for one command. The returned stop func
// flushes logs and must always be called.
func initSetup(ccmd *cobra.Command, command string) (*setup.Setup, func(), error) {
	configFile, _ := ccmd.Flags().GetString(configFlag)

	s, stoppers, err := setup.Init(command, config.WithConfigFile(configFile))
	stop := func() {
		timeout := 5 * time.Second
		if s != nil && s.Config.App.GracefulTimeout != 0 {
			timeout = s.Config.App.GracefulTimeout
		}
		graceful.StopProcess(timeout, stoppers...)
	}

	return s, stop, err
}

func commandContext(ccmd *cobra.Command) context.Context {
	if ctx := ccmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
