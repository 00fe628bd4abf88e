// Package postgres provides the PostgreSQL-backed implementation of the
// scalar preference store. Writes accumulate in memory and flush to a single
// preferences table on Commit, in one transaction, mirroring the editor/apply
// semantics of the mobile client's preference file.
package postgres
