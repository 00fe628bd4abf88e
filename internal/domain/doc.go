// Package domain contains the core entities of the Adlam learning system:
// letters and alphabet progression for the script course, vocabulary items,
// cards and study sessions for spaced-repetition review.
//
// Entities carry their own validation and default construction logic but no
// persistence or scheduling behavior; those live in the store and service
// packages respectively.
package domain
