// Package errors provides structured errors for the rpg-dungeon service.
//
// Errors carry a Code, a user-facing message, an optional cause and
// metadata. The code survives wrapping, so a NotFound raised by the session
// repository is still a NotFound when the handler converts it to gRPC.
//
// # Basic Usage
//
//	err := errors.NotFound("dungeon session not found").
//	    WithMeta("session_id", id)
//
//	if err := repo.Create(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store dungeon session")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("party_level", input.PartyLevel, 0, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Handlers return errors.ToGRPCError(err). Metadata is attached to the
// status as a google.protobuf.Struct detail and restored by FromGRPCError
// on the client side.
//
// # Layer Guidelines
//
// Repository layer returns NotFound for missing or expired sessions and wraps
// storage failures. Orchestrators validate input with InvalidArgument and wrap
// repository errors with context. Handlers only convert.
package errors
