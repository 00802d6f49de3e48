package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	progressionv1 "github.com/KirkDiggler/rpg-progression/gen/go/progression/v1"
	"github.com/KirkDiggler/rpg-progression/internal/commands"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

var (
	serverAddr  string
	worldID     string
	actorID     string
	targetID    string
	goalValue   bool
	partyPass   string
	printJSON   bool
	callTimeout time.Duration
)

var adminCmd = &cobra.Command{
	Use:   "admin <command> [name]",
	Short: "Run an administrative or party command against a running server",
	Long: `Run one command against a running server and print its result. Commands:
  ` + commandList(),
	Args: cobra.RangeArgs(1, 2),
	RunE: runAdmin,
}

func init() {
	for _, cmd := range []*cobra.Command{adminCmd, watchCmd} {
		cmd.Flags().StringVar(&serverAddr, "addr", "localhost:50061", "server address")
		cmd.Flags().StringVar(&worldID, "world", "overworld", "world id")
		cmd.Flags().StringVar(&actorID, "actor", "", "player issuing the command")
		_ = cmd.MarkFlagRequired("actor")
	}
	adminCmd.Flags().StringVar(&targetID, "target", "", "player the command acts on")
	adminCmd.Flags().BoolVar(&goalValue, "value", true, "flag value for set-goal")
	adminCmd.Flags().StringVar(&partyPass, "password", "", "party password")
	adminCmd.Flags().BoolVar(&printJSON, "json", false, "print the full result as JSON")
	adminCmd.Flags().DurationVar(&callTimeout, "timeout", 5*time.Second, "call timeout")
}

func commandList() string {
	names := make([]string, len(commands.Commands))
	for i, c := range commands.Commands {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func dial() (*grpc.ClientConn, progressionv1.ProgressionServiceClient, error) {
	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", serverAddr, err)
	}
	return conn, progressionv1.NewProgressionServiceClient(conn), nil
}

func parsePlayer(flag, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("--%s must be a player uuid: %w", flag, err)
	}
	return id, nil
}

func runAdmin(cmd *cobra.Command, args []string) error {
	actor, err := parsePlayer("actor", actorID)
	if err != nil {
		return err
	}

	req := &progressionv1.ExecuteRequest{
		World:   worldID,
		ActorId: actor.String(),
		Command: args[0],
	}
	if len(args) == 2 {
		req.Name = args[1]
	}
	if targetID != "" {
		target, err := parsePlayer("target", targetID)
		if err != nil {
			return err
		}
		req.TargetId = target.String()
	}
	if cmd.Flags().Changed("value") {
		req.Value = &goalValue
	}
	if cmd.Flags().Changed("password") {
		req.Password = &partyPass
	}

	conn, client, err := dial()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	out, err := client.Execute(ctx, req)
	if err != nil {
		err = errors.FromGRPCError(err)
		return fmt.Errorf("command failed (%s): %s", errors.GetCode(err), errors.GetMessage(err))
	}
	return printResult(cmd.OutOrStdout(), out)
}

func printResult(w io.Writer, out *progressionv1.ExecuteResponse) error {
	code := color.New(color.FgGreen).Sprint(out.GetCode())
	if !commands.Code(out.GetCode()).OK() {
		code = color.New(color.FgRed).Sprint(out.GetCode())
	}
	fmt.Fprintf(w, "%s %s\n", code, out.GetMessage())

	for _, listing := range out.GetParties() {
		fmt.Fprintf(w, "  %-24s %d/%d\n", listing.GetName(), listing.GetMembers(), listing.GetMaxMembers())
	}

	if printJSON {
		return printProto(w, out)
	}
	return nil
}

func printProto(w io.Writer, msg proto.Message) error {
	marshaler := protojson.MarshalOptions{
		Indent:          "  ",
		EmitUnpopulated: false,
	}
	jsonBytes, err := marshaler.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
