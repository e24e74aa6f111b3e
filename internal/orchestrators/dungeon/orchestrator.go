// Package dungeon implements the dungeon orchestrator: it generates
// layouts, populates them and keeps the inputs in a session so the same
// dungeon can be rebuilt or repopulated later.
package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=dungeonmock github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	dungeongen "github.com/KirkDiggler/rpg-dungeon/internal/dungeon"
	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-dungeon/internal/population"
	dungeonsession "github.com/KirkDiggler/rpg-dungeon/internal/repositories/dungeon_session"
)

// Service defines the interface for dungeon operations
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
	Repopulate(ctx context.Context, input *RepopulateInput) (*RepopulateOutput, error)
	GetDungeon(ctx context.Context, input *GetDungeonInput) (*GetDungeonOutput, error)
}

// Config holds the dependencies for the dungeon orchestrator
type Config struct {
	SessionRepo dungeonsession.Repository
	Catalog     *population.Catalog
	IDGenerator idgen.Generator
	Seeder      rng.Seeder

	// EventBus is optional; without it nothing is published.
	EventBus   events.EventBus
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Seeder == nil {
		vb.RequiredField("Seeder")
	}
	if c.SessionTTL < 0 {
		vb.Field("SessionTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo dungeonsession.Repository
	populator   *population.Populator
	idGen       idgen.Generator
	seeder      rng.Seeder
	eventBus    events.EventBus
	sessionTTL  time.Duration
}

// NewOrchestrator creates a new dungeon orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	populator, err := population.NewPopulator(&population.Config{Catalog: cfg.Catalog})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create populator")
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		populator:   populator,
		idGen:       cfg.IDGenerator,
		seeder:      cfg.Seeder,
		eventBus:    cfg.EventBus,
		sessionTTL:  ttl,
	}, nil
}

// Generate builds a new dungeon, populates it and stores the session
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("dungeon_seed", int(input.DungeonSeed), vb)
	errors.ValidateNonNegative("population_seed", int(input.PopulationSeed), vb)
	validatePopulation(input.Population, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	dungeonSeed := rng.Resolve(o.seeder, input.DungeonSeed, rng.MaxDungeonSeed)
	d := dungeongen.GenerateSeeded(input.Layout.DungeonParams(), dungeonSeed)

	session := &entities.DungeonSession{
		ID: o.idGen.Generate(),
		Layout: entities.LayoutParams{
			Size:      d.Layout.Size,
			Shape:     d.Layout.Shape,
			Corridors: d.Algorithm,
			Spread:    d.Layout.Spread,
			Tileset:   input.Layout.Tileset,
		},
		DungeonSeed:    dungeonSeed,
		Population:     normalizePopulation(input.Population),
		PopulationSeed: rng.Resolve(o.seeder, input.PopulationSeed, rng.MaxPopulationSeed),
	}

	pop, err := o.populate(session, d)
	if err != nil {
		return nil, err
	}

	created, err := o.sessionRepo.Create(ctx, dungeonsession.CreateInput{
		Session: session,
		TTL:     o.sessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dungeon session")
	}
	session = created.Session

	slog.Info("Dungeon generated",
		"dungeon_id", session.ID,
		"size", session.Layout.Size,
		"shape", session.Layout.Shape,
		"corridors", session.Layout.Corridors,
		"dungeon_seed", session.DungeonSeed,
		"population_seed", session.PopulationSeed,
		"rooms", len(d.Rooms),
	)

	o.publish(ctx, EventDungeonGenerated, session.ID, nil, map[string]any{
		KeyRoomCount:   len(d.Rooms),
		KeyDungeonSeed: session.DungeonSeed,
	})
	o.publishPopulation(ctx, session, pop)

	return &GenerateOutput{Result: Result{Session: session, Dungeon: d, Population: pop}}, nil
}

// Repopulate rebuilds a stored layout and fills it with a new population
func (o *orchestrator) Repopulate(ctx context.Context, input *RepopulateInput) (*RepopulateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateNonNegative("population_seed", int(input.PopulationSeed), vb)
	if input.Population != nil {
		validatePopulation(*input.Population, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	got, err := o.sessionRepo.Get(ctx, dungeonsession.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dungeon session")
	}

	session := got.Session
	if input.Population != nil {
		session.Population = normalizePopulation(*input.Population)
	}
	session.PopulationSeed = rng.Resolve(o.seeder, input.PopulationSeed, rng.MaxPopulationSeed)

	d := dungeongen.GenerateSeeded(session.Layout.DungeonParams(), session.DungeonSeed)
	pop, err := o.populate(session, d)
	if err != nil {
		return nil, err
	}

	updated, err := o.sessionRepo.Update(ctx, dungeonsession.UpdateInput{Session: session})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update dungeon session")
	}
	session = updated.Session

	slog.Info("Dungeon repopulated",
		"dungeon_id", session.ID,
		"theme", session.Population.Theme,
		"population_seed", session.PopulationSeed,
	)

	o.publishPopulation(ctx, session, pop)

	return &RepopulateOutput{Result: Result{Session: session, Dungeon: d, Population: pop}}, nil
}

// GetDungeon rebuilds a stored dungeon and its population from the session
func (o *orchestrator) GetDungeon(ctx context.Context, input *GetDungeonInput) (*GetDungeonOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	got, err := o.sessionRepo.Get(ctx, dungeonsession.GetInput{ID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dungeon session")
	}

	session := got.Session
	d := dungeongen.GenerateSeeded(session.Layout.DungeonParams(), session.DungeonSeed)
	pop, err := o.populate(session, d)
	if err != nil {
		return nil, err
	}

	return &GetDungeonOutput{Result: Result{Session: session, Dungeon: d, Population: pop}}, nil
}

func (o *orchestrator) populate(session *entities.DungeonSession, d *dungeongen.Dungeon) (*population.Result, error) {
	pop, err := o.populator.Populate(&population.Input{
		RoomAreas:  d.RoomAreas(),
		Theme:      session.Population.Theme,
		PartySize:  session.Population.PartySize,
		PartyLevel: session.Population.PartyLevel,
		Density:    session.Population.Density,
	}, rng.New(session.PopulationSeed))
	if err != nil {
		return nil, errors.Wrap(err, "failed to populate dungeon")
	}
	return pop, nil
}

func (o *orchestrator) publishPopulation(ctx context.Context, session *entities.DungeonSession, pop *population.Result) {
	placed := 0
	for _, enc := range pop.Encounters {
		if enc.Empty() {
			continue
		}
		placed++
		o.publish(ctx, EventEncounterPlaced, session.ID,
			&entities.RoomEntity{DungeonID: session.ID, Index: enc.RoomIndex},
			map[string]any{
				KeyMonster:  enc.Monster,
				KeyCount:    enc.Count,
				KeyTargetXP: enc.TargetXP,
			})
	}

	o.publish(ctx, EventDungeonPopulated, session.ID, nil, map[string]any{
		KeyRoomCount:      len(pop.Encounters),
		KeyEncounterCount: placed,
		KeyPopulationSeed: session.PopulationSeed,
	})
}

// publish sends an event when a bus is configured. Failures are logged and
// never fail the request.
func (o *orchestrator) publish(ctx context.Context, eventType, dungeonID string, target core.Entity, data map[string]any) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, &entities.DungeonEntity{ID: dungeonID}, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish dungeon event",
			"event", eventType,
			"dungeon_id", dungeonID,
			"error", err,
		)
	}
}

func validatePopulation(p entities.PopulationParams, vb *errors.ValidationBuilder) {
	errors.ValidateNonNegative("party_size", p.PartySize, vb)
	errors.ValidateRange("party_level", p.PartyLevel, 0, population.MaxPartyLevel, vb)
}

// normalizePopulation maps unknown themes to everything and unset density
// to the default so stored sessions only hold known values.
func normalizePopulation(p entities.PopulationParams) entities.PopulationParams {
	p.Theme = population.ParseTheme(string(p.Theme))
	if p.Density <= 0 {
		p.Density = population.DensityDefault
	}
	if p.Density > population.DensityFull {
		p.Density = population.DensityFull
	}
	return p
}
