package v1alpha1

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	dungeongen "github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/population"
)

// Request field names
const (
	FieldSessionID      = "session_id"
	FieldSize           = "size"
	FieldShape          = "shape"
	FieldCorridors      = "corridors"
	FieldSpread         = "spread"
	FieldTileset        = "tileset"
	FieldDungeonSeed    = "dungeon_seed"
	FieldPopulationSeed = "population_seed"
	FieldTheme          = "theme"
	FieldPartySize      = "party_size"
	FieldPartyLevel     = "party_level"
	FieldDensity        = "density"
)

var populationFields = []string{FieldTheme, FieldPartySize, FieldPartyLevel, FieldDensity}

func toGenerateInput(req *structpb.Struct) (*dungeon.GenerateInput, error) {
	vb := errors.NewValidationBuilder()

	input := &dungeon.GenerateInput{
		Layout: entities.LayoutParams{
			Size:      dungeongen.ParseSize(stringField(req, FieldSize)),
			Shape:     dungeongen.ParseShape(stringField(req, FieldShape)),
			Corridors: dungeongen.ParseCorridorAlgorithm(stringField(req, FieldCorridors)),
			Spread:    dungeongen.ParseRoomSpread(stringField(req, FieldSpread)),
			Tileset:   stringField(req, FieldTileset),
		},
		DungeonSeed:    intField(req, FieldDungeonSeed, vb),
		Population:     toPopulationParams(req, vb),
		PopulationSeed: intField(req, FieldPopulationSeed, vb),
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return input, nil
}

func toRepopulateInput(req *structpb.Struct) (*dungeon.RepopulateInput, error) {
	vb := errors.NewValidationBuilder()

	input := &dungeon.RepopulateInput{
		SessionID:      stringField(req, FieldSessionID),
		PopulationSeed: intField(req, FieldPopulationSeed, vb),
	}
	errors.ValidateRequired(FieldSessionID, input.SessionID, vb)

	for _, name := range populationFields {
		if _, ok := req.GetFields()[name]; ok {
			params := toPopulationParams(req, vb)
			input.Population = &params
			break
		}
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return input, nil
}

func toGetDungeonInput(req *structpb.Struct) (*dungeon.GetDungeonInput, error) {
	vb := errors.NewValidationBuilder()
	input := &dungeon.GetDungeonInput{SessionID: stringField(req, FieldSessionID)}
	errors.ValidateRequired(FieldSessionID, input.SessionID, vb)

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return input, nil
}

func toPopulationParams(req *structpb.Struct, vb *errors.ValidationBuilder) entities.PopulationParams {
	return entities.PopulationParams{
		Theme:      population.ParseTheme(stringField(req, FieldTheme)),
		PartySize:  int(intField(req, FieldPartySize, vb)),
		PartyLevel: int(intField(req, FieldPartyLevel, vb)),
		Density:    densityField(req, vb),
	}
}

// stringField reads a string, formatting numbers so "2" and 2 both work
func stringField(req *structpb.Struct, name string) string {
	v, ok := req.GetFields()[name]
	if !ok {
		return ""
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return strings.TrimSpace(k.StringValue)
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
	default:
		return ""
	}
}

// intField reads an integer given as a number or a decimal string such as
// a zero padded seed. Missing and null fields are zero.
func intField(req *structpb.Struct, name string, vb *errors.ValidationBuilder) int64 {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0
	}

	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return 0
	case *structpb.Value_NumberValue:
		if k.NumberValue != math.Trunc(k.NumberValue) || math.Abs(k.NumberValue) > 1<<53 {
			vb.Field(name, "must be an integer")
			return 0
		}
		return int64(k.NumberValue)
	case *structpb.Value_StringValue:
		raw := strings.TrimSpace(k.StringValue)
		if raw == "" {
			return 0
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			vb.Fieldf(name, "must be an integer, got %q", raw)
			return 0
		}
		return n
	default:
		vb.Field(name, "must be an integer")
		return 0
	}
}

// densityField accepts a keyword (sparse, dense, full) or a percentage
func densityField(req *structpb.Struct, vb *errors.ValidationBuilder) population.Density {
	raw := stringField(req, FieldDensity)
	if raw == "" {
		return 0
	}
	if _, err := strconv.Atoi(raw); err == nil {
		return population.Density(intField(req, FieldDensity, vb))
	}
	return population.ParseDensity(raw)
}

// toResultStruct renders a regenerated dungeon. Rooms are listed by their
// 1-based index; tile rows are indexed [y][x].
func toResultStruct(res *dungeon.Result) (*structpb.Struct, error) {
	if res == nil || res.Session == nil || res.Dungeon == nil || res.Population == nil {
		return nil, errors.Internal("incomplete dungeon result")
	}

	session := res.Session
	d := res.Dungeon
	pop := res.Population

	rows := d.Grid.Rows()
	tiles := make([]any, len(rows))
	for y, row := range rows {
		cells := make([]any, len(row))
		for x, code := range row {
			cells[x] = code
		}
		tiles[y] = cells
	}

	rooms := make([]any, len(d.Rooms))
	for i, room := range d.Rooms {
		rooms[i] = map[string]any{
			"index":  i + 1,
			"x":      room.Rect.X,
			"y":      room.Rect.Y,
			"width":  room.Rect.Width,
			"height": room.Rect.Height,
			"area":   room.Area(),
		}
	}

	corridors := make([]any, len(d.Corridors))
	for i, c := range d.Corridors {
		corridors[i] = map[string]any{
			"x":      c.Rect.X,
			"y":      c.Rect.Y,
			"width":  c.Rect.Width,
			"height": c.Rect.Height,
		}
	}

	encounters := make([]any, len(pop.Encounters))
	for i, enc := range pop.Encounters {
		encounters[i] = map[string]any{
			"room_index": enc.RoomIndex,
			"monster":    enc.Monster,
			"count":      enc.Count,
			"target_xp":  enc.TargetXP,
			"monster_xp": enc.MonsterXP,
			"difficulty": string(enc.Difficulty),
			"text":       enc.String(),
		}
	}

	anomalies := make([]any, 0, len(d.Anomalies()))
	for _, a := range d.Anomalies() {
		anomalies = append(anomalies, map[string]any{
			"x":            a.Point.X,
			"y":            a.Point.Y,
			"neighborhood": a.Neighborhood.String(),
		})
	}

	out, err := structpb.NewStruct(map[string]any{
		FieldSessionID:      session.ID,
		"expires_at":        session.ExpiresAt.UTC().Format(time.RFC3339),
		FieldSize:           string(session.Layout.Size),
		FieldShape:          string(session.Layout.Shape),
		FieldCorridors:      string(session.Layout.Corridors),
		FieldSpread:         string(session.Layout.Spread),
		FieldTileset:        session.Layout.Tileset,
		FieldDungeonSeed:    FormatDungeonSeed(session.DungeonSeed),
		FieldPopulationSeed: FormatPopulationSeed(session.PopulationSeed),
		FieldTheme:          string(session.Population.Theme),
		FieldPartySize:      pop.PartySize,
		FieldPartyLevel:     pop.PartyLevel,
		FieldDensity:        int(pop.Density),
		"thresholds": map[string]any{
			"easy":   pop.Thresholds.Easy,
			"medium": pop.Thresholds.Medium,
			"hard":   pop.Thresholds.Hard,
			"deadly": pop.Thresholds.Deadly,
		},
		"width":             d.Grid.Width(),
		"height":            d.Grid.Height(),
		"tiles":             tiles,
		"rooms":             rooms,
		"corridor_segments": corridors,
		"encounters":        encounters,
		"anomalies":         anomalies,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode dungeon result")
	}
	return out, nil
}

// FormatDungeonSeed renders a dungeon seed as eight digits
func FormatDungeonSeed(seed int64) string {
	return fmt.Sprintf("%08d", seed)
}

// FormatPopulationSeed renders a population seed as four digits
func FormatPopulationSeed(seed int64) string {
	return fmt.Sprintf("%04d", seed)
}
