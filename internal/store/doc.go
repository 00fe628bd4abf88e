// Package store defines the scalar preference store the learning engines
// persist their state through, plus an in-memory implementation used as the
// default backend and as the test double. A PostgreSQL-backed implementation
// lives in internal/platform/postgres.
//
// The store is deliberately shaped like a mobile preference file: flat keys
// holding ints, int64s, strings or string sets, with an explicit Commit.
// Missing keys are not errors; every getter takes the default to return so
// engines can reconstruct documented initial state from an empty store.
package store
