package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/redis"
	partyrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/party"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
)

var (
	repairWorlds []string
	repairDelete bool
	repairYes    bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find stored records that no longer decode",
	Long: `Scan the stored progression and party tables for entries that fail to decode.
The server resets or drops such entries on load anyway; --delete removes them
from redis so they stop being reported.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis address")
	repairCmd.Flags().StringSliceVar(&repairWorlds, "world", nil, "worlds to scan (default: every stored world)")
	repairCmd.Flags().BoolVar(&repairDelete, "delete", false, "delete the corrupted entries")
	repairCmd.Flags().BoolVar(&repairYes, "yes", false, "do not ask before deleting")
}

// corruptTable is one world table and the fields in it that failed to decode
type corruptTable struct {
	key    string
	fields []string
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.RedisAddr = redisAddr
	}

	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	tables, err := findCorrupted(ctx, client, repairWorlds)
	if err != nil {
		return err
	}
	return reportCorrupted(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), client, tables)
}

// storedWorlds lists every world with a progression or party table
func storedWorlds(ctx context.Context, client redis.Client) ([]string, error) {
	seen := make(map[string]struct{})
	for _, prefix := range []string{progressionrepo.WorldKey(""), partyrepo.WorldKey("")} {
		iter := client.Scan(ctx, 0, prefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			seen[strings.TrimPrefix(iter.Val(), prefix)] = struct{}{}
		}
		if err := iter.Err(); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", prefix, err)
		}
	}

	worlds := make([]string, 0, len(seen))
	for w := range seen {
		worlds = append(worlds, w)
	}
	sort.Strings(worlds)
	return worlds, nil
}

func findCorrupted(ctx context.Context, client redis.Client, worlds []string) ([]corruptTable, error) {
	if len(worlds) == 0 {
		var err error
		if worlds, err = storedWorlds(ctx, client); err != nil {
			return nil, err
		}
	}

	progressionRepo, err := progressionrepo.NewRedis(&progressionrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}
	partyRepo, err := partyrepo.NewRedis(&partyrepo.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	var tables []corruptTable
	for _, w := range worlds {
		records, err := progressionRepo.LoadAll(ctx, progressionrepo.LoadAllInput{World: w})
		if err != nil {
			return nil, err
		}
		if len(records.Corrupted) > 0 {
			tables = append(tables, corruptTable{key: progressionrepo.WorldKey(w), fields: records.Corrupted})
		}

		parties, err := partyRepo.LoadAll(ctx, partyrepo.LoadAllInput{World: w})
		if err != nil {
			return nil, err
		}
		if len(parties.Corrupted) > 0 {
			tables = append(tables, corruptTable{key: partyrepo.WorldKey(w), fields: parties.Corrupted})
		}
	}
	return tables, nil
}

func reportCorrupted(ctx context.Context, in io.Reader, out io.Writer, client redis.Client, tables []corruptTable) error {
	total := 0
	for _, t := range tables {
		for _, field := range t.fields {
			fmt.Fprintf(out, "%s %s %s\n", color.New(color.FgRed).Sprint("CORRUPT"), t.key, field)
		}
		total += len(t.fields)
	}

	if total == 0 {
		fmt.Fprintln(out, color.New(color.FgGreen).Sprint("No corrupted entries found"))
		return nil
	}
	fmt.Fprintf(out, "\nFound %d corrupted entries\n", total)

	if !repairDelete {
		return nil
	}
	if !repairYes {
		fmt.Fprint(out, "Delete these entries? (yes/no): ")
		answer, _ := bufio.NewReader(in).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(out, "Aborted, no changes made")
			return nil
		}
	}

	for _, t := range tables {
		if err := client.HDel(ctx, t.key, t.fields...).Err(); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", t.key, err)
		}
		fmt.Fprintf(out, "Deleted %d entries from %s\n", len(t.fields), t.key)
	}
	return nil
}
