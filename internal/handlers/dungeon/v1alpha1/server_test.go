package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-dungeon/internal/population"
	dungeonsession "github.com/KirkDiggler/rpg-dungeon/internal/repositories/dungeon_session"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

const bufSize = 1024 * 1024

type ServerTestSuite struct {
	suite.Suite
	server *grpc.Server
	conn   *grpc.ClientConn
	client v1alpha1.DungeonServiceClient
	ctx    context.Context
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.ctx = context.Background()

	catalog, err := population.Bundled()
	s.Require().NoError(err)

	svc, err := dungeon.NewOrchestrator(&dungeon.Config{
		SessionRepo: dungeonsession.NewInMemory(clock.NewFixed(testutils.TestTime)),
		Catalog:     catalog,
		IDGenerator: idgen.NewSequential("dgn"),
		Seeder:      rng.FixedSeeder{Value: 1234},
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{DungeonService: svc})
	s.Require().NoError(err)

	lis := bufconn.Listen(bufSize)
	s.server = grpc.NewServer()
	v1alpha1.RegisterDungeonServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewDungeonServiceClient(conn)
}

func (s *ServerTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

func (s *ServerTestSuite) TestGenerateThenGet() {
	req, err := structpb.NewStruct(map[string]any{
		"size":         "3",
		"shape":        "Rectangle",
		"dungeon_seed": 20240301,
		"party_size":   5,
		"party_level":  8,
	})
	s.Require().NoError(err)

	generated, err := s.client.Generate(s.ctx, req)
	s.Require().NoError(err)

	fields := generated.GetFields()
	sessionID := fields["session_id"].GetStringValue()
	s.Equal("dgn_1", sessionID)
	s.Equal("20240301", fields["dungeon_seed"].GetStringValue())
	s.Equal("1234", fields["population_seed"].GetStringValue())
	s.Equal(float64(51), fields["width"].GetNumberValue())
	s.Equal(float64(36), fields["height"].GetNumberValue())

	got, err := s.client.GetDungeon(s.ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
		"session_id": structpb.NewStringValue(sessionID),
	}})
	s.Require().NoError(err)

	s.Equal(fields["tiles"].AsInterface(), got.GetFields()["tiles"].AsInterface())
	s.Equal(fields["encounters"].AsInterface(), got.GetFields()["encounters"].AsInterface())
}

func (s *ServerTestSuite) TestRepopulateKeepsLayout() {
	generated, err := s.client.Generate(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)
	sessionID := generated.GetFields()["session_id"].GetStringValue()

	req, err := structpb.NewStruct(map[string]any{
		"session_id":      sessionID,
		"population_seed": "0099",
		"theme":           "beasts",
	})
	s.Require().NoError(err)

	repopulated, err := s.client.Repopulate(s.ctx, req)
	s.Require().NoError(err)

	fields := repopulated.GetFields()
	s.Equal("0099", fields["population_seed"].GetStringValue())
	s.Equal("beasts", fields["theme"].GetStringValue())
	s.Equal(generated.GetFields()["tiles"].AsInterface(), fields["tiles"].AsInterface())
}

func (s *ServerTestSuite) TestUnknownSession() {
	req, err := structpb.NewStruct(map[string]any{"session_id": "dgn_404"})
	s.Require().NoError(err)

	_, err = s.client.GetDungeon(s.ctx, req)
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
	s.Equal("dgn_404", errors.GetMeta(errors.FromGRPCError(err))["session_id"])
}
