package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/block-cats/internal/orchestrators/game"
	"github.com/KirkDiggler/block-cats/internal/orchestrators/progress"
	"github.com/KirkDiggler/block-cats/internal/pieces"
	"github.com/KirkDiggler/block-cats/internal/pkg/idgen"
)

var maxMoves int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Auto-play one game and record it",
	Long: `Play one game with the player's items and equipped skin. Each move takes
the first legal placement for a random tray piece; when nothing fits, items
are spent before the game ends. The result is folded into quest and
collection progress.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&maxMoves, "max-moves", game.DefaultMaxMoves, "Stop the game after this many moves")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	return withBackend(cmd, func(ctx context.Context, b *backend) error {
		out := cmd.OutOrStdout()

		player, err := b.progress.GetPlayer(ctx, &progress.GetPlayerInput{PlayerID: playerID})
		if err != nil {
			return err
		}

		session, err := game.NewSession(&game.Config{
			Generator:   pieces.NewGenerator(nil),
			IDGenerator: idgen.NewUUID("game"),
			Inventory:   player.Player.Inventory,
			Skin:        player.Player.Equipped.Skin,
		})
		if err != nil {
			return err
		}

		stats, err := game.NewAutoPlayer(nil, maxMoves).Play(session)
		if err != nil {
			return err
		}

		left := session.Inventory()
		recorded, err := b.progress.RecordGame(ctx, &progress.RecordGameInput{
			PlayerID:  playerID,
			Stats:     stats,
			Inventory: &left,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Game %s over\n\n", session.GetID())
		renderBoard(out, session.Board())
		fmt.Fprintf(out, "\nScore:          %d\n", stats.FinalScore)
		fmt.Fprintf(out, "Pieces placed:  %d\n", stats.BlocksPlaced)
		fmt.Fprintf(out, "Lines cleared:  %d (best %d at once)\n", stats.TotalLines, stats.MaxLinesAtOnce)
		fmt.Fprintf(out, "Best combo:     %d (%d combo clears)\n", stats.MaxCombo, stats.ComboEvents)
		fmt.Fprintf(out, "Items used:     %s\n", formatItems(stats.ItemUses))
		fmt.Fprintf(out, "Items left:     %s\n", formatItems(left.ItemCounts))

		for _, id := range recorded.Unlocks.Icons {
			fmt.Fprintf(out, "Unlocked icon:  %s\n", id)
		}
		for _, id := range recorded.Unlocks.CosmeticQuests {
			fmt.Fprintf(out, "Completed:      %s\n", id)
		}
		for _, id := range recorded.Unlocks.Sets {
			fmt.Fprintf(out, "New skin:       %s\n", id)
		}

		fmt.Fprintln(out)
		renderQuests(out, recorded.Quests)
		return nil
	})
}
