package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dodocode/blathers/filter"
	"github.com/dodocode/blathers/nookipedia"
)

// crittersCmd represents the critters command
var crittersCmd = &cobra.Command{
	Use:   "critters [month]",
	Short: "List critters available in a month",
	Long: `List the fish, bugs, and sea creatures catchable in the given month
(defaults to the current month) for your configured hemisphere. The three
categories are fetched concurrently.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCritters,
}

func init() {
	rootCmd.AddCommand(crittersCmd)

	crittersCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	crittersCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runCritters(cmd *cobra.Command, args []string) error {
	month := "current"
	if len(args) == 1 {
		month = args[0]
	}

	var (
		fish         *nookipedia.CritterMonth[nookipedia.Fish]
		bugs         *nookipedia.CritterMonth[nookipedia.Bug]
		seaCreatures *nookipedia.CritterMonth[nookipedia.SeaCreature]
	)

	// The three categories are independent one-shot requests.
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(3)

	g.Go(func() error {
		var err error
		fish, err = client.GetFishByMonth(ctx, month, nil)
		if err != nil {
			return fmt.Errorf("failed to get fish: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		bugs, err = client.GetBugsByMonth(ctx, month, nil)
		if err != nil {
			return fmt.Errorf("failed to get bugs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		seaCreatures, err = client.GetSeaCreaturesByMonth(ctx, month, nil)
		if err != nil {
			return fmt.Errorf("failed to get sea creatures: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	south := strings.EqualFold(cfg.Island.Hemisphere, "south")

	fishList := fish.North
	bugList := bugs.North
	seaList := seaCreatures.North
	if south {
		fishList = fish.South
		bugList = bugs.South
		seaList = seaCreatures.South
	}

	expr, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expr != "" {
		compiled, err := filter.Compile(expr)
		if err != nil {
			return err
		}
		logger.Debug().Str("filter", expr).Msg("Applying client-side filter")
		fishList = filter.Fish(compiled, fishList)
		bugList = filter.Bugs(compiled, bugList)
		seaList = filter.SeaCreatures(compiled, seaList)
	}

	monthLabel := fish.Month
	if monthLabel == "" {
		monthLabel = month
	}
	fmt.Printf("\nCritters for month %s (%s hemisphere):\n", monthLabel, strings.ToLower(cfg.Island.Hemisphere))

	printSection := func(title string, count int) {
		fmt.Println(strings.Repeat("-", 80))
		fmt.Printf("%s (%d)\n", title, count)
	}

	printSection("Fish", len(fishList))
	for _, f := range fishList {
		fmt.Printf("• %-24s %s, %d bells\n", f.Name, f.Location, f.SellNook)
	}

	printSection("Bugs", len(bugList))
	for _, b := range bugList {
		fmt.Printf("• %-24s %s, %d bells\n", b.Name, b.Location, b.SellNook)
	}

	printSection("Sea creatures", len(seaList))
	for _, s := range seaList {
		fmt.Printf("• %-24s %s shadow, %d bells\n", s.Name, s.ShadowSize, s.SellNook)
	}

	return nil
}
