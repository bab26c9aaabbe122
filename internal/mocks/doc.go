// Package mocks provides hand-written test doubles for the store and auth
// interfaces. Each mock carries optional function fields that override the
// default in-memory behavior, so tests only stub what they care about.
package mocks
