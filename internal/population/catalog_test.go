package population

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) TestBundled() {
	c, err := Bundled()
	s.Require().NoError(err)
	s.Greater(c.Len(), 0)

	goblin, ok := c.Lookup("Goblin")
	s.Require().True(ok)
	s.Equal(50, goblin.XP)
	s.Equal(SizeSmall, goblin.Size)
	s.Equal(TypeHumanoid, goblin.Type)

	dragon, ok := c.Lookup("Ancient Red Dragon")
	s.Require().True(ok)
	s.Equal(62000, dragon.XP)
	s.Equal(SizeGargantuan, dragon.Size)
}

func (s *CatalogTestSuite) TestThemeFilter() {
	c, err := Bundled()
	s.Require().NoError(err)

	s.Len(c.Monsters(ThemeEverything), c.Len())
	for theme, kind := range themeTypes {
		pool := c.Monsters(theme)
		s.NotEmpty(pool, theme)
		for _, m := range pool {
			s.Equal(kind, m.Type, m.Name)
		}
	}
}

func (s *CatalogTestSuite) TestDuplicateNamesKeepFirst() {
	c, err := LoadCatalog(strings.NewReader(`[
		{"name": "Goblin", "meta": "Small humanoid, neutral evil", "Challenge": "1/4 (50 XP)"},
		{"name": "Goblin", "meta": "Large beast, unaligned", "Challenge": "5 (1,800 XP)"}
	]`))
	s.Require().NoError(err)
	s.Equal(1, c.Len())

	m, ok := c.Lookup("Goblin")
	s.Require().True(ok)
	s.Equal(50, m.XP)
	s.Empty(c.Monsters(ThemeBeasts))
}

func (s *CatalogTestSuite) TestLoadErrors() {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "malformed json", input: `{`},
		{name: "empty list", input: `[]`},
		{name: "missing name", input: `[{"meta": "Small humanoid", "Challenge": "1 (200 XP)"}]`},
		{name: "bad challenge", input: `[{"name": "Blob", "meta": "Small ooze", "Challenge": "many"}]`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := LoadCatalog(strings.NewReader(tc.input))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *CatalogTestSuite) TestLoadCatalogFile() {
	path := filepath.Join(s.T().TempDir(), "monsters.json")
	s.Require().NoError(os.WriteFile(path,
		[]byte(`[{"name": "Orc", "meta": "Medium humanoid (orc), chaotic evil", "Challenge": "1/2 (100 XP)"}]`), 0o600))

	c, err := LoadCatalogFile(path)
	s.Require().NoError(err)
	s.Equal(1, c.Len())
}

func (s *CatalogTestSuite) TestLoadCatalogFileMissing() {
	path := filepath.Join(s.T().TempDir(), "missing.json")

	_, err := LoadCatalogFile(path)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(path, errors.GetMeta(err)["path"])
}
