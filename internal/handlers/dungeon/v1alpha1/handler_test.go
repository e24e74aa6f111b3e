package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	dungeongen "github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
	dungeonmock "github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon/mock"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-dungeon/internal/population"
	"github.com/KirkDiggler/rpg-dungeon/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *dungeonmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
	result      dungeon.Result
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = dungeonmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		DungeonService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler

	s.result = s.buildResult()
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) buildResult() dungeon.Result {
	d := dungeongen.GenerateSeeded(dungeongen.Params{Size: dungeongen.SizeTiny}, 5)

	catalog, err := population.Bundled()
	s.Require().NoError(err)
	populator, err := population.NewPopulator(&population.Config{Catalog: catalog})
	s.Require().NoError(err)
	pop, err := populator.Populate(&population.Input{
		RoomAreas:  d.RoomAreas(),
		PartySize:  4,
		PartyLevel: 3,
	}, rng.New(9))
	s.Require().NoError(err)

	session := testutils.CreateTestSession("dgn_1")
	session.Layout.Size = dungeongen.SizeTiny
	session.ExpiresAt = testutils.TestTime
	session.PopulationSeed = 42

	return dungeon.Result{Session: session, Dungeon: d, Population: pop}
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGenerateConvertsRequest() {
	req := s.request(map[string]any{
		"size":            "large",
		"shape":           "rectangle",
		"corridors":       "drunkard",
		"spread":          "dungeon",
		"tileset":         "stone",
		"dungeon_seed":    "00001234",
		"population_seed": 42,
		"theme":           "Undead",
		"party_size":      4,
		"party_level":     "3",
		"density":         "dense",
	})

	s.mockService.EXPECT().
		Generate(s.ctx, &dungeon.GenerateInput{
			Layout: entities.LayoutParams{
				Size:      dungeongen.SizeLarge,
				Shape:     dungeongen.ShapeRectangle,
				Corridors: dungeongen.CorridorDrunkard,
				Spread:    dungeongen.SpreadDungeon,
				Tileset:   "stone",
			},
			DungeonSeed: 1234,
			Population: entities.PopulationParams{
				Theme:      population.ThemeUndead,
				PartySize:  4,
				PartyLevel: 3,
				Density:    population.DensityDense,
			},
			PopulationSeed: 42,
		}).
		Return(&dungeon.GenerateOutput{Result: s.result}, nil)

	resp, err := s.handler.Generate(s.ctx, req)
	s.Require().NoError(err)

	fields := resp.GetFields()
	s.Equal("dgn_1", fields["session_id"].GetStringValue())
	s.Equal("12345678", fields["dungeon_seed"].GetStringValue())
	s.Equal("0042", fields["population_seed"].GetStringValue())
	s.Equal("stone", fields["tileset"].GetStringValue())
	s.Equal(float64(25), fields["width"].GetNumberValue())
	s.Equal(float64(25), fields["height"].GetNumberValue())
	s.Equal("2024-03-01T12:00:00Z", fields["expires_at"].GetStringValue())

	tiles := fields["tiles"].GetListValue().GetValues()
	s.Len(tiles, 25)
	s.Len(tiles[0].GetListValue().GetValues(), 25)

	rooms := fields["rooms"].GetListValue().GetValues()
	s.Len(rooms, len(s.result.Dungeon.Rooms))
	s.Equal(float64(1), rooms[0].GetStructValue().GetFields()["index"].GetNumberValue())

	encounters := fields["encounters"].GetListValue().GetValues()
	s.Require().Len(encounters, len(s.result.Population.Encounters))
	first := encounters[0].GetStructValue().GetFields()
	s.Equal(s.result.Population.Encounters[0].String(), first["text"].GetStringValue())

	s.Empty(fields["anomalies"].GetListValue().GetValues())
	s.Equal(float64(300), fields["thresholds"].GetStructValue().GetFields()["easy"].GetNumberValue())
}

func (s *HandlerTestSuite) TestGenerateDefaults() {
	s.mockService.EXPECT().
		Generate(s.ctx, &dungeon.GenerateInput{
			Layout: entities.LayoutParams{
				Size:      dungeongen.DefaultSize,
				Shape:     dungeongen.ShapeSquare,
				Corridors: dungeongen.CorridorBSP,
				Spread:    dungeongen.SpreadLeaf,
			},
			Population: entities.PopulationParams{Theme: population.ThemeEverything},
		}).
		Return(&dungeon.GenerateOutput{Result: s.result}, nil)

	_, err := s.handler.Generate(s.ctx, &structpb.Struct{})
	s.NoError(err)
}

func (s *HandlerTestSuite) TestGenerateRejectsBadNumbers() {
	testCases := []struct {
		name   string
		fields map[string]any
	}{
		{name: "seed text", fields: map[string]any{"dungeon_seed": "abc"}},
		{name: "fractional party", fields: map[string]any{"party_size": 2.5}},
		{name: "boolean level", fields: map[string]any{"party_level": true}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.Generate(s.ctx, s.request(tc.fields))
			s.Require().Error(err)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestServiceErrorsMapToStatus() {
	s.mockService.EXPECT().
		GetDungeon(s.ctx, &dungeon.GetDungeonInput{SessionID: "gone"}).
		Return(nil, errors.NotFound("dungeon session has expired").WithMeta("session_id", "gone"))

	_, err := s.handler.GetDungeon(s.ctx, s.request(map[string]any{"session_id": "gone"}))
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))

	converted := errors.FromGRPCError(err)
	s.True(errors.IsNotFound(converted))
	s.Equal("gone", errors.GetMeta(converted)["session_id"])
}

func (s *HandlerTestSuite) TestGetDungeonRequiresSession() {
	_, err := s.handler.GetDungeon(s.ctx, &structpb.Struct{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestRepopulate() {
	s.Run("keeps stored params", func() {
		s.mockService.EXPECT().
			Repopulate(s.ctx, &dungeon.RepopulateInput{SessionID: "dgn_1", PopulationSeed: 7}).
			Return(&dungeon.RepopulateOutput{Result: s.result}, nil)

		_, err := s.handler.Repopulate(s.ctx, s.request(map[string]any{
			"session_id":      "dgn_1",
			"population_seed": "0007",
		}))
		s.NoError(err)
	})

	s.Run("overrides params", func() {
		s.mockService.EXPECT().
			Repopulate(s.ctx, &dungeon.RepopulateInput{
				SessionID: "dgn_1",
				Population: &entities.PopulationParams{
					Theme:   population.ThemeFiends,
					Density: population.Density(50),
				},
			}).
			Return(&dungeon.RepopulateOutput{Result: s.result}, nil)

		_, err := s.handler.Repopulate(s.ctx, s.request(map[string]any{
			"session_id": "dgn_1",
			"theme":      "fiends",
			"density":    50,
		}))
		s.NoError(err)
	})

	s.Run("requires session", func() {
		_, err := s.handler.Repopulate(s.ctx, s.request(map[string]any{"theme": "fiends"}))
		s.Equal(codes.InvalidArgument, status.Code(err))
	})
}

func (s *HandlerTestSuite) TestIncompleteResult() {
	s.mockService.EXPECT().
		GetDungeon(s.ctx, gomock.Any()).
		Return(&dungeon.GetDungeonOutput{}, nil)

	_, err := s.handler.GetDungeon(s.ctx, s.request(map[string]any{"session_id": "dgn_1"}))
	s.Equal(codes.Internal, status.Code(err))
}
