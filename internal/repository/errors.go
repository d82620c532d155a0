package repo

import "errors"

const (
	uniqueViolationCode = "23505"
	fkViolationCode     = "23503"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrTeamExists         = errors.New("team with this name already exists")
	ErrActivityTypeExists = errors.New("activity type with this name already exists")
	ErrReferenced         = errors.New("resource is referenced by existing records")
)
