package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/block-cats/internal/errors"
	"github.com/KirkDiggler/block-cats/internal/redis"
	progressrepo "github.com/KirkDiggler/block-cats/internal/repositories/progress"
)

var repairDelete bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find progress blobs in Redis that no longer decode",
	Long: `Scan every quest and player progress key in Redis and report the ones
that cannot be read. Unreadable progress is replaced with fresh state on the
next load anyway; --delete removes it now.`,
	Args: cobra.NoArgs,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairDelete, "delete", false, "Delete unreadable keys")
}

func runRepair(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	client, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to connect to redis at %s", redisAddr)
	}
	defer func() { _ = client.Close() }()

	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}

	repo, err := progressrepo.NewRedisRepository(&progressrepo.Config{Client: client})
	if err != nil {
		return err
	}

	checked, corrupted, err := scanCorrupted(ctx, client, repo)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Checked %d keys, found %d unreadable\n", checked, len(corrupted))
	for _, key := range corrupted {
		fmt.Fprintf(out, "  - %s\n", key)
	}
	if len(corrupted) == 0 || !repairDelete {
		return nil
	}

	if err := client.Del(ctx, corrupted...).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete unreadable keys")
	}
	fmt.Fprintf(out, "Deleted %d keys\n", len(corrupted))
	return nil
}

func scanCorrupted(ctx context.Context, client redis.Client, repo progressrepo.Repository) (int, []string, error) {
	probes := map[string]func(playerID string) error{
		"quest_progress:": func(playerID string) error {
			_, err := repo.GetQuestProgress(ctx, progressrepo.GetInput{PlayerID: playerID})
			return err
		},
		"player_progress:": func(playerID string) error {
			_, err := repo.GetPlayerProgress(ctx, progressrepo.GetInput{PlayerID: playerID})
			return err
		},
	}

	var (
		checked   int
		corrupted []string
	)
	for _, prefix := range []string{"quest_progress:", "player_progress:"} {
		iter := client.Scan(ctx, 0, prefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			key := iter.Val()
			checked++

			err := probes[prefix](strings.TrimPrefix(key, prefix))
			switch {
			case err == nil:
			case errors.IsDataLoss(err):
				corrupted = append(corrupted, key)
			default:
				return checked, nil, errors.Wrapf(err, "failed to read %s", key)
			}
		}
		if err := iter.Err(); err != nil {
			return checked, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan keys")
		}
	}
	return checked, corrupted, nil
}
