// Package errors provides the structured error type shared by the progression engine.
//
// Store operations on progression and party records never fail for expected
// gameplay conditions; those surface as typed result codes. This package covers
// the remaining failure surface:
//   - construction errors (invalid config, missing dependencies)
//   - persistence errors (redis unavailable, corrupted records)
//   - conversion to gRPC status at the network boundary
//
// # Basic Usage
//
//	err := errors.InvalidArgument("world id is required")
//	err := errors.NotFoundf("world %s is not loaded", world).
//	    WithMeta("world", world)
//
// Wrapping keeps the original code when the cause is already an *Error:
//
//	if _, err := pipe.Exec(ctx); err != nil {
//	    return nil, errors.Wrap(err, "failed to flush progression records")
//	}
//
// Configuration validation goes through the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("party.max_size", cfg.Party.MaxSize, 1, 16, vb)
//	return vb.Build()
package errors
