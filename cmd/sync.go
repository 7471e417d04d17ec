package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncGuestID string
	syncReverse bool
)

// syncCmd reconciles guests and seating for one wedding.
var syncCmd = &cobra.Command{
	Use:   "sync <weddingId>",
	Short: "Reconcile guest RSVPs with seating assignments",
	Long: `Reconcile the guest and seating collections of a wedding.

By default every guest is pushed into seating state and a report is
persisted. Use --guest to reconcile a single guest, or --reverse to push
seating assignments back onto guest records instead.

Examples:
  # Full forward sync
  sync wedding-123

  # One guest only
  sync wedding-123 --guest guest-42

  # Reverse direction (seating wins)
  sync wedding-123 --reverse`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	RootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringVar(&syncGuestID, "guest", "", "Reconcile only this guest")
	syncCmd.Flags().BoolVar(&syncReverse, "reverse", false, "Push seating state back onto guest records")
}

func runSync(cmd *cobra.Command, args []string) error {
	weddingID := args[0]
	svc, l, err := buildService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	switch {
	case syncReverse:
		report, err := svc.ReverseSync(ctx, weddingID)
		if err != nil {
			return err
		}
		l.Info("Reverse sync completed",
			zap.Int("total", report.Total),
			zap.Int("updated", report.Updated),
			zap.Int("created", report.Created),
			zap.Int("errors", report.Errors),
			zap.Strings("recovered", report.Recovered),
		)

	case syncGuestID != "":
		result := svc.SyncGuest(ctx, weddingID, syncGuestID)
		if !result.Success {
			l.Error("Guest sync failed",
				zap.String("guest_id", syncGuestID),
				zap.String("code", string(result.Code)),
				zap.String("error", result.Error),
			)
			return nil
		}
		l.Info("Guest synced",
			zap.String("guest_id", syncGuestID),
			zap.String("action", result.Action),
		)

	default:
		report, err := svc.SyncAll(ctx, weddingID)
		if err != nil {
			return err
		}
		l.Info("Sync completed",
			zap.Int("total", report.Total),
			zap.Int("synced", report.Synced),
			zap.Int("removed", report.Removed),
			zap.Int("needs_seating", report.NeedsSeating),
			zap.Int("errors", report.Errors),
		)
	}
	return nil
}
