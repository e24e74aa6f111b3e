package client

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/protobuf/types/known/structpb"
)

type OutputTestSuite struct {
	suite.Suite
	res *structpb.Struct
}

func TestOutputSuite(t *testing.T) {
	suite.Run(t, new(OutputTestSuite))
}

func (s *OutputTestSuite) SetupTest() {
	var err error
	s.res, err = structpb.NewStruct(map[string]any{
		"session_id":      "dgn_1",
		"size":            "1",
		"shape":           "Square",
		"corridors":       "BSP",
		"spread":          "leaf",
		"dungeon_seed":    "00000042",
		"population_seed": "0007",
		"theme":           "everything",
		"party_size":      4,
		"party_level":     3,
		"density":         75,
		"tiles": []any{
			[]any{6, 5, 7},
			[]any{2, 1, 3},
			[]any{8, 4, 9},
		},
		"encounters": []any{
			map[string]any{"text": "Room: 1\n2 x Goblin\nApproximate XP: 300", "difficulty": "easy"},
		},
		"anomalies": []any{},
	})
	s.Require().NoError(err)
}

func (s *OutputTestSuite) TestSummary() {
	var buf bytes.Buffer
	s.Require().NoError(PrintResult(&buf, s.res, false))

	out := buf.String()
	s.Contains(out, "Dungeon dgn_1")
	s.Contains(out, "Dungeon seed: 00000042  Population seed: 0007")
	s.Contains(out, "Party: 4 characters at level 3  Theme: everything  Density: 75%")
	s.Contains(out, "+-+\n|.|\n+-+\n")
	s.Contains(out, "Room: 1\n2 x Goblin\nApproximate XP: 300\nDifficulty: easy")
	s.NotContains(out, "Unclassified tiles")
}

func (s *OutputTestSuite) TestJSON() {
	var buf bytes.Buffer
	s.Require().NoError(PrintResult(&buf, s.res, true))

	var decoded map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &decoded))
	s.Equal("dgn_1", decoded["session_id"])
}

func (s *OutputTestSuite) TestTileRows() {
	s.Equal([][]int{{6, 5, 7}, {2, 1, 3}, {8, 4, 9}}, TileRows(s.res))
}

func (s *OutputTestSuite) TestTileRowsMissing() {
	s.Empty(TileRows(&structpb.Struct{}))
}
