package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/block-cats/internal/orchestrators/progress"
	"github.com/KirkDiggler/block-cats/internal/progression"
)

var starsCmd = &cobra.Command{
	Use:   "stars",
	Short: "Show the star total and collection",
	Args:  cobra.NoArgs,
	RunE:  runStars,
}

var buyCmd = &cobra.Command{
	Use:   "buy [set-id]",
	Short: "Buy a cosmetic set with coins",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuy,
}

var equipCmd = &cobra.Command{
	Use:   "equip [set-id]",
	Short: "Equip an owned cosmetic set",
	Args:  cobra.ExactArgs(1),
	RunE:  runEquip,
}

func runStars(cmd *cobra.Command, _ []string) error {
	return withBackend(cmd, func(ctx context.Context, b *backend) error {
		result, err := b.progress.GetPlayer(ctx, &progress.GetPlayerInput{PlayerID: playerID})
		if err != nil {
			return err
		}

		p := result.Player
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s has %d stars\n", p.Nickname, result.TotalStars)
		fmt.Fprintf(out, "Coins:    %d\n", p.Coins)
		fmt.Fprintf(out, "Items:    %s\n", formatItems(p.Inventory.ItemCounts))
		fmt.Fprintf(out, "Skin:     %s\n", p.Equipped.Skin)
		fmt.Fprintf(out, "Sets:     %s\n", joinOrNone(p.OwnedSets))
		fmt.Fprintf(out, "Icons:    %s\n", joinOrNone(p.UnlockedIcons))
		fmt.Fprintf(out, "Quests:   %s\n", joinOrNone(p.CompletedCosmeticQuests))

		fmt.Fprintln(out, "\nShop:")
		for _, set := range progression.CosmeticSets() {
			if set.Price <= 0 || p.Owns(set.ID) {
				continue
			}
			fmt.Fprintf(out, "  %-10s %-20s %d coins\n", set.ID, set.Name, set.Price)
		}
		return nil
	})
}

func runBuy(cmd *cobra.Command, args []string) error {
	return withBackend(cmd, func(ctx context.Context, b *backend) error {
		result, err := b.progress.PurchaseSet(ctx, &progress.PurchaseSetInput{PlayerID: playerID, SetID: args[0]})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Bought %s, %d coins left\n", args[0], result.Player.Coins)
		return nil
	})
}

func runEquip(cmd *cobra.Command, args []string) error {
	return withBackend(cmd, func(ctx context.Context, b *backend) error {
		if _, err := b.progress.EquipSet(ctx, &progress.EquipSetInput{PlayerID: playerID, SetID: args[0]}); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Equipped %s\n", args[0])
		return nil
	})
}

func joinOrNone(ids []string) string {
	if len(ids) == 0 {
		return "none"
	}
	return strings.Join(ids, ", ")
}
