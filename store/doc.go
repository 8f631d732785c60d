// Package store holds a small shop schema used by the recdict CLI and tests.
//
// The models cover every field kind: dates and datetimes (plain and
// nullable), a time of day, foreign keys, a many-to-many set, reverse
// relations, images and files. Customer and Order point at each other, which
// exercises the cycle guard.
package store
