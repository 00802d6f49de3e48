package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	progressionv1 "github.com/KirkDiggler/rpg-progression/gen/go/progression/v1"
	"github.com/KirkDiggler/rpg-progression/internal/broadcast"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream a player's progression and party snapshots",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	player, err := parsePlayer("actor", actorID)
	if err != nil {
		return err
	}

	conn, client, err := dial()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stream, err := client.Watch(ctx, &progressionv1.WatchRequest{World: worldID, PlayerId: player.String()})
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	out := cmd.OutOrStdout()
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("watch ended: %w", err)
		}

		kind := broadcast.Kind(msg.GetKind())
		fmt.Fprintln(out, color.New(kindColor(kind)).Sprint(kind))
		if err := printProto(out, msg); err != nil {
			return err
		}
	}
}

func kindColor(kind broadcast.Kind) color.Attribute {
	switch kind {
	case broadcast.KindParty:
		return color.FgCyan
	case broadcast.KindPartyLeft:
		return color.FgYellow
	default:
		return color.FgGreen
	}
}
