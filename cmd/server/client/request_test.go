package client

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/dungeon/v1alpha1"
)

type RequestTestSuite struct {
	suite.Suite
	cmd        *cobra.Command
	layout     LayoutFlags
	population PopulationFlags
}

func TestRequestSuite(t *testing.T) {
	suite.Run(t, new(RequestTestSuite))
}

func (s *RequestTestSuite) SetupTest() {
	s.layout = LayoutFlags{}
	s.population = PopulationFlags{}
	s.cmd = &cobra.Command{Use: "test"}
	s.layout.Bind(s.cmd)
	s.population.Bind(s.cmd)
}

func (s *RequestTestSuite) TestOnlyChangedFlagsAreSent() {
	s.Require().NoError(s.cmd.ParseFlags([]string{"--size", "tiny", "--dungeon-seed", "42", "--party-level", "5"}))

	req, err := NewRequest(s.layout.Fields(s.cmd), s.population.Fields(s.cmd))
	s.Require().NoError(err)

	fields := req.GetFields()
	s.Len(fields, 3)
	s.Equal("tiny", fields[v1alpha1.FieldSize].GetStringValue())
	s.Equal(float64(42), fields[v1alpha1.FieldDungeonSeed].GetNumberValue())
	s.Equal(float64(5), fields[v1alpha1.FieldPartyLevel].GetNumberValue())
}

func (s *RequestTestSuite) TestNoFlags() {
	s.Require().NoError(s.cmd.ParseFlags(nil))

	req, err := NewRequest(s.layout.Fields(s.cmd), s.population.Fields(s.cmd))
	s.Require().NoError(err)
	s.Empty(req.GetFields())
}

func (s *RequestTestSuite) TestLaterPartsWin() {
	req, err := NewRequest(
		map[string]any{v1alpha1.FieldTheme: "beasts"},
		map[string]any{v1alpha1.FieldTheme: "undead", v1alpha1.FieldSessionID: "dgn_1"},
	)
	s.Require().NoError(err)
	s.Equal("undead", req.GetFields()[v1alpha1.FieldTheme].GetStringValue())
	s.Equal("dgn_1", req.GetFields()[v1alpha1.FieldSessionID].GetStringValue())
}
