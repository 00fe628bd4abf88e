// Package catalog holds the static content catalogs: the 28-letter Adlam
// alphabet in teaching order and the built-in Fulfulde vocabulary set.
// Catalogs are immutable for the process lifetime; accessors return fresh
// slices so callers cannot corrupt the canonical order.
package catalog
