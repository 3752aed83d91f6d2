package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dodocode/blathers/nookipedia"
)

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's events",
	Long:  `Show the New Horizons calendar events for today (birthdays, seasons, special events).`,
	RunE:  runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	today := time.Now().Format("2006-01-02")

	ctx := context.Background()
	events, err := client.GetEvents(ctx, &nookipedia.RequestOptions{
		Query: nookipedia.Query{"date": today},
	})
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}

	if len(events) == 0 {
		fmt.Printf("No events today (%s).\n", today)
		return nil
	}

	fmt.Printf("\nEvents for %s:\n", today)
	fmt.Println(strings.Repeat("-", 80))
	for _, e := range events {
		fmt.Printf("• %s", e.Event)
		if e.Type != "" {
			fmt.Printf(" [%s]", e.Type)
		}
		fmt.Println()
	}

	return nil
}
