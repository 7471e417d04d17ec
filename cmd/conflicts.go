package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"wedding-planner/feature/seating/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	resolveConflicts bool
	yesConfirm       bool
)

// conflictsCmd lists and optionally resolves guest/seating conflicts.
var conflictsCmd = &cobra.Command{
	Use:   "conflicts <weddingId>",
	Short: "List guest/seating conflicts (optionally resolve them)",
	Long: `Scan a wedding for inconsistencies between the guest and seating
collections.

With --resolve each conflict gets its standard resolution applied:
auto-assign for confirmed guests without a seat, removal for orphaned
seating rows, and seat removal for unconfirmed guests holding a seat.
Resolving mutates data, so it asks for confirmation unless --yes is set.

Examples:
  # Report only
  conflicts wedding-123

  # Resolve everything, interactively confirmed
  conflicts wedding-123 --resolve

  # Resolve non-interactively
  conflicts wedding-123 --resolve --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runConflicts,
}

func init() {
	RootCmd.AddCommand(conflictsCmd)
	conflictsCmd.Flags().BoolVar(&resolveConflicts, "resolve", false, "Apply the standard resolution to each conflict")
	conflictsCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
}

// standardResolution maps each conflict type to its default strategy.
func standardResolution(t models.ConflictType) string {
	switch t {
	case models.ConflictMissingSeating:
		return models.ResolutionAutoAssign
	case models.ConflictOrphanSeating:
		return models.ResolutionRemove
	case models.ConflictSeatingNotConfirmed:
		return models.ResolutionRemoveSeating
	default:
		return ""
	}
}

func runConflicts(cmd *cobra.Command, args []string) error {
	weddingID := args[0]
	svc, l, err := buildService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	conflicts, err := svc.Conflicts(ctx, weddingID)
	if err != nil {
		return fmt.Errorf("failed to detect conflicts: %w", err)
	}

	l.Info("Conflict report", zap.Int("conflicts", len(conflicts)))
	for _, c := range conflicts {
		l.Info("Conflict",
			zap.String("type", string(c.Type)),
			zap.String("severity", c.Severity),
			zap.String("guest_id", c.GuestID),
			zap.String("guest_name", c.GuestName),
			zap.String("seating_id", c.SeatingID),
		)
	}

	if !resolveConflicts || len(conflicts) == 0 {
		if len(conflicts) > 0 {
			l.Info("No actions requested. Use --resolve to apply the standard resolutions.")
		}
		return nil
	}

	if !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	resolved, failed := 0, 0
	for _, c := range conflicts {
		result := svc.Resolve(ctx, weddingID, c, standardResolution(c.Type))
		if result.Success {
			resolved++
			continue
		}
		failed++
		l.Warn("Resolution failed",
			zap.String("type", string(c.Type)),
			zap.String("guest_id", c.GuestID),
			zap.String("code", string(result.Code)),
			zap.String("error", result.Error),
		)
	}
	l.Info("Resolution completed", zap.Int("resolved", resolved), zap.Int("failed", failed))
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to confirm destructive actions: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
