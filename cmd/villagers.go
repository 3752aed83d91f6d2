package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dodocode/blathers/filter"
	"github.com/dodocode/blathers/nookipedia"
)

var (
	villagerSpecies     string
	villagerPersonality string
	villagerGames       []string
	villagerDetails     bool
)

// villagersCmd represents the villagers command
var villagersCmd = &cobra.Command{
	Use:   "villagers [name]",
	Short: "Look up villagers",
	Long: `Search villagers across all Animal Crossing games. Server-side
filters (species, personality, game) are passed to the API; the --filter
expression is evaluated client-side on the results.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVillagers,
}

func init() {
	rootCmd.AddCommand(villagersCmd)

	villagersCmd.Flags().StringVar(&villagerSpecies, "species", "", "filter by species")
	villagersCmd.Flags().StringVar(&villagerPersonality, "personality", "", "filter by personality")
	villagersCmd.Flags().StringSliceVar(&villagerGames, "game", nil, "limit to game appearances (repeatable, e.g. NH)")
	villagersCmd.Flags().BoolVar(&villagerDetails, "details", false, "include New Horizons details")
	villagersCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	villagersCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runVillagers(cmd *cobra.Command, args []string) error {
	query := nookipedia.Query{}
	if len(args) == 1 {
		query["name"] = args[0]
	}
	if villagerSpecies != "" {
		query["species"] = villagerSpecies
	}
	if villagerPersonality != "" {
		query["personality"] = villagerPersonality
	}
	if len(villagerGames) > 0 {
		query["game"] = villagerGames
	}
	if villagerDetails {
		query["nhdetails"] = true
	}

	ctx := context.Background()
	villagers, err := client.GetVillagers(ctx, &nookipedia.RequestOptions{Query: query})
	if err != nil {
		return fmt.Errorf("failed to get villagers: %w", err)
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
		villagers = filter.Villagers(compiled, villagers)
	}

	if len(villagers) == 0 {
		fmt.Println("No villagers found.")
		return nil
	}

	fmt.Printf("\nFound %d villagers:\n", len(villagers))
	fmt.Println(strings.Repeat("-", 80))

	for _, v := range villagers {
		fmt.Printf("• %s (%s, %s)", v.Name, v.Species, v.Personality)
		if birthday := v.Birthday(); birthday != "" {
			fmt.Printf(" — birthday %s", birthday)
		}
		fmt.Println()
		if v.Phrase != "" {
			fmt.Printf("  Catchphrase: %q\n", v.Phrase)
		}
		if villagerDetails && v.NHDetails != nil {
			if v.NHDetails.Hobby != "" {
				fmt.Printf("  Hobby: %s\n", v.NHDetails.Hobby)
			}
			if len(v.NHDetails.FavColors) > 0 {
				fmt.Printf("  Favorite colors: %s\n", strings.Join(v.NHDetails.FavColors, ", "))
			}
		}
	}

	return nil
}
