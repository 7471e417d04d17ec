package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"wedding-planner/feature/seating/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	layoutStrategy string
	hallWidth      float64
	hallHeight     float64
	layoutJSON     bool
)

// layoutCmd generates a table layout for one wedding.
var layoutCmd = &cobra.Command{
	Use:   "layout <weddingId>",
	Short: "Generate a table layout for the wedding hall",
	Long: `Place the wedding's tables inside the hall using one of the placement
strategies (columns, circular, aisle, u-shape, random, chevron).

When the wedding has no tables yet, a default set is derived from the
guest count (one table per ten guests) and persisted.

Examples:
  # Default strategy and hall size from configuration
  layout wedding-123

  # Specific strategy and hall
  layout wedding-123 --strategy u-shape --width 2400 --height 1600

  # Print the full layout as JSON
  layout wedding-123 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

func init() {
	RootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().StringVar(&layoutStrategy, "strategy", "", "Placement strategy (defaults to the configured one)")
	layoutCmd.Flags().Float64Var(&hallWidth, "width", 0, "Hall width in layout units")
	layoutCmd.Flags().Float64Var(&hallHeight, "height", 0, "Hall height in layout units")
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "Print the resulting layout as JSON")
}

func runLayout(cmd *cobra.Command, args []string) error {
	weddingID := args[0]
	svc, l, err := buildService()
	if err != nil {
		return err
	}

	var hall *models.HallSize
	if hallWidth > 0 && hallHeight > 0 {
		hall = &models.HallSize{Width: hallWidth, Height: hallHeight}
	}

	result, err := svc.GenerateLayout(context.Background(), weddingID, layoutStrategy, hall)
	if err != nil {
		return err
	}

	if layoutJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	l.Info("Layout",
		zap.Int("tables", result.TotalTables),
		zap.Int("assigned", result.TotalAssigned),
		zap.Int("unassigned", len(result.UnassignedGuests)),
		zap.String("message", result.Message),
	)
	for _, table := range result.Tables {
		l.Info("Table placed",
			zap.String("table_id", table.ID),
			zap.String("name", table.Name),
			zap.Float64("x", table.X),
			zap.Float64("y", table.Y),
		)
	}
	return nil
}
