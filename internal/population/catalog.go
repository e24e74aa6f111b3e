package population

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

//go:embed data/srd_monsters.json
var bundledCatalog []byte

// record is one entry of an SRD monster JSON export.
type record struct {
	Name      string `json:"name"`
	Meta      string `json:"meta"`
	Challenge string `json:"Challenge"`
}

// Catalog is an immutable monster index keyed by type.
type Catalog struct {
	monsters []Monster
	byType   map[CreatureType][]Monster
}

// NewCatalog indexes monsters. Later duplicates of a name are dropped.
func NewCatalog(monsters []Monster) *Catalog {
	c := &Catalog{byType: make(map[CreatureType][]Monster)}
	seen := make(map[string]bool, len(monsters))
	for _, m := range monsters {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		c.monsters = append(c.monsters, m)
		if m.Type != "" {
			c.byType[m.Type] = append(c.byType[m.Type], m)
		}
	}
	return c
}

// LoadCatalog decodes an SRD monster list.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode monster catalog")
	}
	if len(records) == 0 {
		return nil, errors.InvalidArgument("monster catalog is empty")
	}

	monsters := make([]Monster, 0, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, errors.InvalidArgumentf("monster record %d has no name", i)
		}
		xp, err := ParseChallengeXP(rec.Challenge)
		if err != nil {
			return nil, errors.Wrapf(err, "monster record %d (%s)", i, rec.Name).
				WithMeta("record", i)
		}
		size, kind := ParseMeta(rec.Meta)
		monsters = append(monsters, Monster{Name: rec.Name, XP: xp, Size: size, Type: kind})
	}

	return NewCatalog(monsters), nil
}

// LoadCatalogFile reads a catalog from disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "failed to open monster catalog").
			WithMeta("path", path)
	}
	defer f.Close()

	c, err := LoadCatalog(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load monster catalog %s", path).WithMeta("path", path)
	}
	return c, nil
}

// Bundled returns the catalog compiled into the binary.
func Bundled() (*Catalog, error) {
	return LoadCatalog(bytes.NewReader(bundledCatalog))
}

// Len returns the number of distinct monsters
func (c *Catalog) Len() int {
	return len(c.monsters)
}

// Monsters returns the pool for a theme in catalog order. The slice must
// not be modified.
func (c *Catalog) Monsters(theme Theme) []Monster {
	if t, ok := themeTypes[theme]; ok {
		return c.byType[t]
	}
	return c.monsters
}

// Lookup finds a monster by name
func (c *Catalog) Lookup(name string) (Monster, bool) {
	for _, m := range c.monsters {
		if m.Name == name {
			return m, true
		}
	}
	return Monster{}, false
}
