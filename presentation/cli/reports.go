package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"ksrtc_booker/infrastructure/config"
	"ksrtc_booker/infrastructure/storage"

	"github.com/spf13/cobra"
)

func reportsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reports [id]",
		Short: "List saved runs, or show one as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			store, err := storage.NewReportStore(reportsDir(cfg))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(args) == 1 {
				report, err := store.Load(args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			reports, err := store.List()
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Fprintln(out, "No runs yet.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTARTED\tSTRATEGY\tBUS\tDATE\tSTATUS\tSEATS\tFAILED AT")
			for _, r := range reports {
				failedAt := "-"
				if step, ok := r.FailedStep(); ok {
					failedAt = step.Name
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%v\t%s\n",
					r.ID, r.Started.Format("2006-01-02 15:04"), r.Strategy, r.BusProvider, r.TravelDate, r.Status, r.SelectedSeats, failedAt)
			}
			return tw.Flush()
		},
	}
}
