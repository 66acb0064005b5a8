// Package repository implements data access over database/sql. This file
// defines sentinel errors shared across repositories so that handlers can
// map failure modes to HTTP statuses without inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when no row matches a lookup, and also when a row
// exists but is owned by a different user. The two cases are deliberately
// indistinguishable so that id probing cannot reveal existence.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned by UserRepo.Create when the unique email
// constraint is violated. Handlers translate it into HTTP 400.
var ErrEmailExists = errors.New("email already exists")
