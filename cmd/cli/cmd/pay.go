package cmd

import (
	"fmt"
	"io"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/log"
	"bitbucket.org/Amartha/go-emi-collection/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	payAccountFlag = "account"
	payAmountFlag  = "amount"
)

var payCmd = &cobra.Command{
	Use:     "pay",
	Short:   "Submit an EMI payment",
	Long:    `Submits one payment to the collection service and prints the outcome. Exits with status 1 when the payment is not accepted.`,
	Example: "emi-collection pay --account=ACC1 --amount=2500.50",
	RunE:    runPay,
}

func runPay(ccmd *cobra.Command, args []string) (err error) {
	startedAt := time.Now()

	account, _ := ccmd.Flags().GetString(payAccountFlag)
	amount, _ := ccmd.Flags().GetString(payAmountFlag)

	s, stop, err := initSetup(ccmd, "cli-pay")
	defer stop()
	if err != nil {
		return fmt.Errorf("failed to setup app: %w", err)
	}

	ctx := commandContext(ccmd)
	defer func() { log.LogCommand(ctx, "pay", startedAt, err) }()

	outcome := s.Service.Controller.SubmitPayment(ctx, account, amount)
	printOutcome(ccmd.OutOrStdout(), outcome)

	if outcome.Status != models.PaymentSucceeded {
		return fmt.Errorf("payment not accepted: %w", outcomeErr(outcome))
	}

	return nil
}

func printOutcome(w io.Writer, outcome models.PaymentOutcome) {
	c := color.New(color.FgRed)
	if outcome.Status == models.PaymentSucceeded {
		c = color.New(color.FgGreen)
	}
	_, _ = c.Fprintln(w, outcome.Message)
}

func outcomeErr(outcome models.PaymentOutcome) error {
	if outcome.Err != nil {
		return outcome.Err
	}
	return fmt.Errorf("%s", outcome.Message)
}
