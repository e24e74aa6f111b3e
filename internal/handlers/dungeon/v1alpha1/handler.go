// Package v1alpha1 handles the DungeonService grpc interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/orchestrators/dungeon"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	DungeonService dungeon.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.DungeonService == nil {
		return errors.InvalidArgument("dungeon service is required")
	}
	return nil
}

// Handler implements DungeonServiceServer on top of the dungeon orchestrator
type Handler struct {
	dungeonService dungeon.Service
}

var _ DungeonServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		dungeonService: cfg.DungeonService,
	}, nil
}

// Generate creates a dungeon and its population
func (h *Handler) Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := toGenerateInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.dungeonService.Generate(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&output.Result)
}

// Repopulate replaces the population of a stored dungeon
func (h *Handler) Repopulate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := toRepopulateInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.dungeonService.Repopulate(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&output.Result)
}

// GetDungeon rebuilds a stored dungeon
func (h *Handler) GetDungeon(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input, err := toGetDungeonInput(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.dungeonService.GetDungeon(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&output.Result)
}

func respond(res *dungeon.Result) (*structpb.Struct, error) {
	out, err := toResultStruct(res)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
