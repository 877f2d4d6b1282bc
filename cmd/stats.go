package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newStatsCmd(root *rootOptions) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Long:  "Show total, completed, pending and overdue counts across all projects.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.openSession(cmd, nil, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			stats := s.App.Snapshot().Stats
			return formatter(cmd, jsonOutput).Success(stats, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Total:     %d\nCompleted: %d\nPending:   %d\nOverdue:   %d\n",
					stats.Total, stats.Completed, stats.Pending, stats.Overdue)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}
