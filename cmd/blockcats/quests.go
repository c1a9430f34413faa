package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/orchestrators/progress"
	"github.com/KirkDiggler/block-cats/internal/quests"
)

var (
	claimSlot   int
	claimWeekly bool
)

var questsCmd = &cobra.Command{
	Use:   "quests",
	Short: "Show today's daily quests and this week's quest",
	Args:  cobra.NoArgs,
	RunE:  runQuests,
}

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim a completed quest",
	Long: `Claim a completed daily quest by its slot number as shown by "quests",
or the weekly quest with --weekly.

  claim --slot 2
  claim --weekly`,
	Args: cobra.NoArgs,
	RunE: runClaim,
}

func init() {
	claimCmd.Flags().IntVar(&claimSlot, "slot", 0, fmt.Sprintf("Daily quest slot (1-%d)", quests.DailySlots))
	claimCmd.Flags().BoolVar(&claimWeekly, "weekly", false, "Claim the weekly quest")
	claimCmd.MarkFlagsMutuallyExclusive("slot", "weekly")
	claimCmd.MarkFlagsOneRequired("slot", "weekly")
}

func runQuests(cmd *cobra.Command, _ []string) error {
	return withBackend(cmd, func(ctx context.Context, b *backend) error {
		out, err := b.progress.GetQuests(ctx, &progress.GetQuestsInput{PlayerID: playerID})
		if err != nil {
			return err
		}

		renderQuests(cmd.OutOrStdout(), out.Quests)
		return nil
	})
}

func runClaim(cmd *cobra.Command, _ []string) error {
	if !claimWeekly && (claimSlot < 1 || claimSlot > quests.DailySlots) {
		return errors.InvalidArgumentf("--slot must be between 1 and %d", quests.DailySlots)
	}

	return withBackend(cmd, func(ctx context.Context, b *backend) error {
		var (
			result *progress.ClaimOutput
			err    error
			label  string
		)
		if claimWeekly {
			label = "weekly quest"
			result, err = b.progress.ClaimWeeklyQuest(ctx, &progress.ClaimWeeklyQuestInput{PlayerID: playerID})
		} else {
			label = fmt.Sprintf("daily quest %d", claimSlot)
			result, err = b.progress.ClaimDailyQuest(ctx, &progress.ClaimDailyQuestInput{
				PlayerID: playerID,
				Slot:     claimSlot - 1,
			})
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !result.Claimed {
			fmt.Fprintf(out, "Nothing to claim: %s is not complete or already claimed\n", label)
			return nil
		}

		fmt.Fprintf(out, "Claimed %s: %s\n", label, formatReward(result.Reward))
		fmt.Fprintf(out, "Coins: %d  Items: %s\n", result.Player.Coins, formatItems(result.Player.Inventory.ItemCounts))
		return nil
	})
}
