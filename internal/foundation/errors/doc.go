// Package errors provides the classified error primitives used across ctfpress.
//
// Every failure the pipeline can report carries a category that decides how the
// driver reacts to it:
//   - CategoryMetadata: the event descriptor is missing or malformed (fatal to that event)
//   - CategoryDocument: a declared challenge body could not be read (recovered by dropping it)
//   - CategoryOutput: a directory, page or asset could not be written (reported, no rollback)
//   - CategoryConfig / CategoryValidation: the run configuration is unusable
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryMetadata, "parse event descriptor").
//		WithContext("event", name).
//		WithContext("path", descriptorPath).
//		Build()
package errors
