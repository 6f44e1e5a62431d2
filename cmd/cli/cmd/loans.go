package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/dateutil"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/log"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
	"bitbucket.org/Amartha/go-emi-collection/internal/models"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loansCmd = &cobra.Command{
	Use:     "loans",
	Short:   "Show the loan directory",
	Long:    `Fetches the loan directory from the collection service and prints one row per account.`,
	Example: "emi-collection loans --config=./config.yaml",
	RunE:    runLoans,
}

func runLoans(ccmd *cobra.Command, args []string) (err error) {
	startedAt := time.Now()

	s, stop, err := initSetup(ccmd, "cli-loans")
	defer stop()
	if err != nil {
		return fmt.Errorf("failed to setup app: %w", err)
	}

	ctx := commandContext(ccmd)
	defer func() { log.LogCommand(ctx, "loans", startedAt, err) }()

	state := s.Service.Controller.LoadDirectory(ctx)
	printDirectory(ccmd.OutOrStdout(), state)

	if state.Status == models.DirectoryFailed {
		return state.Err
	}

	xlog.Info(ctx, "[COMMAND]", xlog.Int("records", len(state.Records)))
	return nil
}

func printDirectory(w io.Writer, state models.LoanDirectoryState) {
	if state.Status == models.DirectoryFailed {
		_, _ = color.New(color.FgRed).Fprintln(w, state.Reason)
		return
	}

	if len(state.Records) == 0 {
		_, _ = fmt.Fprintln(w, "No loan accounts")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ACCOUNT\tISSUE DATE\tINTEREST %\tTENURE (MONTHS)\tEMI DUE")
	for _, record := range state.Records {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			record.AccountNumber,
			dateutil.FormatIssueDate(record.IssueDate, ""),
			record.InterestRatePercent.String(),
			record.TenureMonths,
			record.EMIDue.String(),
		)
	}
	_ = tw.Flush()
}
