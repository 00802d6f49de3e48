package v1_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	progressionv1 "github.com/KirkDiggler/rpg-progression/gen/go/progression/v1"
	"github.com/KirkDiggler/rpg-progression/internal/broadcast"
	"github.com/KirkDiggler/rpg-progression/internal/commands"
	commandsmock "github.com/KirkDiggler/rpg-progression/internal/commands/mock"
	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	v1 "github.com/KirkDiggler/rpg-progression/internal/handlers/progression/v1"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	partyrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/party"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
	"github.com/KirkDiggler/rpg-progression/internal/stores/party"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
	"github.com/KirkDiggler/rpg-progression/internal/world"
)

const (
	overworld     = "overworld"
	advRaid       = "minecraft:adventure/hero_of_the_village"
	advTrialVault = "minecraft:adventure/under_lock_and_key"
)

type HandlerTestSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	executor *commandsmock.MockExecutor
	bus      *events.Bus
	manager  *world.Manager
	server   *grpc.Server
	conn     *grpc.ClientConn
	client   progressionv1.ProgressionServiceClient
	player   uuid.UUID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.executor = commandsmock.NewMockExecutor(s.ctrl)
	s.bus = events.NewBus()
	s.player = uuid.New()

	redisClient, _ := testutils.CreateTestRedisClient(s.T())
	progressionRepo, err := progressionrepo.NewRedis(&progressionrepo.RedisConfig{Client: redisClient})
	s.Require().NoError(err)
	partyRepo, err := partyrepo.NewRedis(&partyrepo.RedisConfig{Client: redisClient})
	s.Require().NoError(err)

	s.manager, err = world.NewManager(&world.ManagerConfig{
		Settings:              config.Default(),
		ProgressionRepository: progressionRepo,
		PartyRepository:       partyRepo,
		Clock:                 clock.New(),
		IDGenerator:           idgen.NewUUID(),
		EventBus:              s.bus,
	})
	s.Require().NoError(err)
	_, err = s.manager.Load(s.ctx, overworld)
	s.Require().NoError(err)

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		Commands: s.executor,
		Worlds:   s.manager,
		EventBus: s.bus,
	})
	s.Require().NoError(err)

	lis := bufconn.Listen(1 << 20)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.server = grpc.NewServer(v1.ServerOptions(logger)...)
	progressionv1.RegisterProgressionServiceServer(s.server, handler)
	reflection.Register(s.server)
	go func() { _ = s.server.Serve(lis) }()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = progressionv1.NewProgressionServiceClient(s.conn)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.NoError(s.conn.Close())
	s.server.Stop()
	s.NoError(s.manager.Close(s.ctx))
}

func (s *HandlerTestSuite) TestExecuteMapsRequestAndResponse() {
	password := "secret"
	target := uuid.New()
	partyID := uuid.New()
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.executor.EXPECT().Execute(gomock.Any(), &commands.ExecuteInput{
		World:    overworld,
		Actor:    s.player,
		Command:  commands.CommandPartyCreate,
		Target:   target,
		Name:     "wolves",
		Password: &password,
	}).Return(&commands.ExecuteOutput{
		Code:    commands.CodeSuccess,
		Message: "Created party wolves.",
		Progression: &broadcast.ProgressionSnapshot{
			PlayerID:   s.player,
			Objectives: map[string]bool{entities.ObjectiveElderGuardian: true},
			Custom:     map[entities.PhaseID]map[string]bool{"deep_dark": {"ancient_city": true}},
			Kills:      map[string]int{"minecraft:zombie": 3},
			Phases:     map[entities.PhaseID]bool{entities.PhaseOne: true},
			Difficulty: entities.Difficulty{Health: 1.5, Damage: 1.25, XP: 2},
		},
		Parties: []party.Listing{{ID: partyID, Name: "wolves", Members: 2, MaxMembers: 8}},
		Invites: []party.Invite{{PartyID: partyID, InvitedBy: target, IssuedAt: issuedAt}},
		Loaded:  4,
	}, nil)

	out, err := s.client.Execute(s.ctx, &progressionv1.ExecuteRequest{
		World:    overworld,
		ActorId:  s.player.String(),
		Command:  string(commands.CommandPartyCreate),
		TargetId: target.String(),
		Name:     "wolves",
		Password: &password,
	})
	s.Require().NoError(err)
	s.Equal(string(commands.CodeSuccess), out.GetCode())
	s.Equal("Created party wolves.", out.GetMessage())
	s.Equal(int32(4), out.GetLoaded())

	progression := out.GetProgression()
	s.Require().NotNil(progression)
	s.Equal(s.player.String(), progression.GetPlayerId())
	s.True(progression.GetObjectives()[entities.ObjectiveElderGuardian])
	s.True(progression.GetCustom()["deep_dark"].GetObjectives()["ancient_city"])
	s.Equal(int32(3), progression.GetKills()["minecraft:zombie"])
	s.True(progression.GetPhases()[string(entities.PhaseOne)])
	s.InDelta(2.0, progression.GetDifficulty().GetXp(), 0.0001)

	s.Require().Len(out.GetParties(), 1)
	s.Equal(partyID.String(), out.GetParties()[0].GetId())
	s.Equal(int32(8), out.GetParties()[0].GetMaxMembers())
	s.Require().Len(out.GetInvites(), 1)
	s.Equal(target.String(), out.GetInvites()[0].GetInvitedBy())
	s.True(issuedAt.Equal(out.GetInvites()[0].GetIssuedAt().AsTime()))
}

func (s *HandlerTestSuite) TestExecuteRejectsMalformedIDs() {
	tests := []struct {
		name string
		req  *progressionv1.ExecuteRequest
	}{
		{name: "actor", req: &progressionv1.ExecuteRequest{World: overworld, ActorId: "steve"}},
		{name: "target", req: &progressionv1.ExecuteRequest{World: overworld, ActorId: s.player.String(), TargetId: "alex"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.client.Execute(s.ctx, tt.req)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestExecuteMapsErrorsToStatus() {
	s.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil, errors.InvalidArgument("actor is required"))

	_, err := s.client.Execute(s.ctx, &progressionv1.ExecuteRequest{World: overworld, Command: string(commands.CommandStatus)})
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal("actor is required", st.Message())
}

func (s *HandlerTestSuite) TestWatchSendsCurrentStateThenUpdates() {
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	stream, err := s.client.Watch(ctx, &progressionv1.WatchRequest{World: overworld, PlayerId: s.player.String()})
	s.Require().NoError(err)

	first, err := stream.Recv()
	s.Require().NoError(err)
	s.Equal(string(broadcast.KindProgression), first.GetKind())
	s.Require().NotNil(first.GetProgression())
	s.Equal(s.player.String(), first.GetProgression().GetPlayerId())
	s.Zero(first.GetProgression().GetKills()["minecraft:zombie"])

	session, ok := s.manager.Session(overworld)
	s.Require().True(ok)
	session.Progression().RecordKill(s.player, "minecraft:zombie")

	update, err := stream.Recv()
	s.Require().NoError(err)
	s.Equal(string(broadcast.KindProgression), update.GetKind())
	s.Equal(int32(1), update.GetProgression().GetKills()["minecraft:zombie"])
}

func (s *HandlerTestSuite) TestWatchIncludesPartySnapshot() {
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	session, _ := s.manager.Session(overworld)
	s.Require().True(session.Parties().CreateParty(s.player, "wolves", nil).OK())

	stream, err := s.client.Watch(ctx, &progressionv1.WatchRequest{World: overworld, PlayerId: s.player.String()})
	s.Require().NoError(err)

	_, err = stream.Recv()
	s.Require().NoError(err)
	party, err := stream.Recv()
	s.Require().NoError(err)
	s.Equal(string(broadcast.KindParty), party.GetKind())
	s.Equal("wolves", party.GetParty().GetName())
	s.Equal(s.player.String(), party.GetParty().GetLeaderId())
	s.Equal([]string{s.player.String()}, party.GetParty().GetMemberIds())
}

func (s *HandlerTestSuite) TestWatchEndsWhenWorldUnloads() {
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	stream, err := s.client.Watch(ctx, &progressionv1.WatchRequest{World: overworld, PlayerId: s.player.String()})
	s.Require().NoError(err)
	_, err = stream.Recv()
	s.Require().NoError(err)

	s.Require().NoError(s.manager.Unload(s.ctx, overworld))

	_, err = stream.Recv()
	s.Equal(codes.Unavailable, status.Code(err))
}

func (s *HandlerTestSuite) TestWatchRejectsBadRequests() {
	tests := []struct {
		name string
		req  *progressionv1.WatchRequest
		code codes.Code
	}{
		{name: "missing world", req: &progressionv1.WatchRequest{PlayerId: s.player.String()}, code: codes.InvalidArgument},
		{name: "missing player", req: &progressionv1.WatchRequest{World: overworld}, code: codes.InvalidArgument},
		{name: "malformed player", req: &progressionv1.WatchRequest{World: overworld, PlayerId: "steve"}, code: codes.InvalidArgument},
		{name: "unknown world", req: &progressionv1.WatchRequest{World: "the_nether", PlayerId: s.player.String()}, code: codes.NotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
			defer cancel()

			stream, err := s.client.Watch(ctx, tt.req)
			s.Require().NoError(err)
			_, err = stream.Recv()
			s.Equal(tt.code, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestReportEventRecordsKillsThroughTheBus() {
	resp, err := s.client.ReportEvent(s.ctx, &progressionv1.ReportEventRequest{
		World: overworld,
		Event: &progressionv1.ReportEventRequest_EntityDeath{EntityDeath: &progressionv1.EntityDeath{
			EntityType: "minecraft:elder_guardian",
			KillerId:   s.player.String(),
			Position:   &progressionv1.Position{X: 10, Y: 64, Z: -3},
		}},
	})
	s.Require().NoError(err)
	s.Equal([]string{entities.ObjectiveElderGuardian}, resp.GetObjectives())
	s.True(resp.GetAllowed())

	session, _ := s.manager.Session(overworld)
	s.Equal(1, session.Progression().Get(s.player).KillCount("minecraft:elder_guardian"))
}

func (s *HandlerTestSuite) TestReportEventGatesPortals() {
	portal := func() *progressionv1.ReportEventResponse {
		resp, err := s.client.ReportEvent(s.ctx, &progressionv1.ReportEventRequest{
			World: overworld,
			Event: &progressionv1.ReportEventRequest_BlockInteraction{BlockInteraction: &progressionv1.BlockInteraction{
				PlayerId:        s.player.String(),
				Block:           "minecraft:nether_portal",
				TargetDimension: config.DefaultPhase1Dimension,
			}},
		})
		s.Require().NoError(err)
		return resp
	}

	denied := portal()
	s.False(denied.GetAllowed())
	s.Equal(string(entities.PhaseOne), denied.GetLockedBy())

	_, err := s.client.ReportEvent(s.ctx, &progressionv1.ReportEventRequest{
		World: overworld,
		Event: &progressionv1.ReportEventRequest_EntityDeath{EntityDeath: &progressionv1.EntityDeath{
			EntityType: "minecraft:elder_guardian",
			KillerId:   s.player.String(),
		}},
	})
	s.Require().NoError(err)

	var last *progressionv1.ReportEventResponse
	for _, adv := range []string{advRaid, advTrialVault} {
		last, err = s.client.ReportEvent(s.ctx, &progressionv1.ReportEventRequest{
			World: overworld,
			Event: &progressionv1.ReportEventRequest_Advancement{Advancement: &progressionv1.Advancement{
				PlayerId:    s.player.String(),
				Advancement: adv,
			}},
		})
		s.Require().NoError(err)
	}
	s.True(last.GetPhasesChanged())

	s.True(portal().GetAllowed())
}

func (s *HandlerTestSuite) TestReportEventRejectsBadRequests() {
	tests := []struct {
		name string
		req  *progressionv1.ReportEventRequest
		code codes.Code
	}{
		{
			name: "missing world",
			req:  &progressionv1.ReportEventRequest{},
			code: codes.InvalidArgument,
		},
		{
			name: "unknown world",
			req:  &progressionv1.ReportEventRequest{World: "the_nether"},
			code: codes.NotFound,
		},
		{
			name: "missing event",
			req:  &progressionv1.ReportEventRequest{World: overworld},
			code: codes.InvalidArgument,
		},
		{
			name: "missing entity type",
			req: &progressionv1.ReportEventRequest{
				World: overworld,
				Event: &progressionv1.ReportEventRequest_EntityDeath{EntityDeath: &progressionv1.EntityDeath{}},
			},
			code: codes.InvalidArgument,
		},
		{
			name: "malformed participant",
			req: &progressionv1.ReportEventRequest{
				World: overworld,
				Event: &progressionv1.ReportEventRequest_EntityDeath{EntityDeath: &progressionv1.EntityDeath{
					EntityType:     "minecraft:zombie",
					ParticipantIds: []string{"alex"},
				}},
			},
			code: codes.InvalidArgument,
		},
		{
			name: "malformed player",
			req: &progressionv1.ReportEventRequest{
				World: overworld,
				Event: &progressionv1.ReportEventRequest_Advancement{Advancement: &progressionv1.Advancement{
					PlayerId:    "steve",
					Advancement: advRaid,
				}},
			},
			code: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.client.ReportEvent(s.ctx, tt.req)
			s.Equal(tt.code, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestReflectionDescribesTheService() {
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	stream, err := reflectionpb.NewServerReflectionClient(s.conn).ServerReflectionInfo(ctx)
	s.Require().NoError(err)

	s.Require().NoError(stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	s.Require().NoError(err)
	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	s.Contains(names, progressionv1.ProgressionService_ServiceDesc.ServiceName)

	s.Require().NoError(stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: "progression.v1.ProgressionService",
		},
	}))
	resp, err = stream.Recv()
	s.Require().NoError(err)
	s.Nil(resp.GetErrorResponse())
	s.NotEmpty(resp.GetFileDescriptorResponse().GetFileDescriptorProto())
	s.NoError(stream.CloseSend())
}

func (s *HandlerTestSuite) TestHandlerConfigValidation() {
	_, err := v1.NewHandler(nil)
	s.Error(err)

	_, err = v1.NewHandler(&v1.HandlerConfig{Worlds: s.manager, EventBus: s.bus})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1.NewHandler(&v1.HandlerConfig{Commands: s.executor, Worlds: s.manager})
	s.True(errors.IsInvalidArgument(err))
}
