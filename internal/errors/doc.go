// Package errors provides structured error handling for repoquest.
//
// Errors carry a code, a message, and optional metadata:
//
//	err := errors.NotFound("world not found")
//	err := errors.InvalidArgumentf("invalid danger level: %d", level)
//
// Adding metadata:
//
//	err := errors.NotFound("world not found").
//	    WithMeta("full_name", fullName)
//
// Wrapping preserves the code of an already-coded error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load world")
//	}
//
// Layer guidelines:
//
// Repository layer returns NotFound/AlreadyExists/InvalidArgument and wraps
// storage failures as Internal. Orchestrators validate inputs with the
// ValidationBuilder and wrap repository errors with pipeline context.
// Callers check with the IsNotFound-style predicates rather than comparing
// codes directly.
package errors
