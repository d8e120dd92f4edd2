// Package format is the type-driven serialization framework: a Formats
// registry of adapters (extractor + serializer pairs) indexed by Go type,
// composed from a DAG of parent registries so an application registry can
// fall back to a base one. ExtractionContext and SerializationContext
// carry per-call state (current path, accumulated problems, user data)
// through a conversion without global mutable state.
package format
