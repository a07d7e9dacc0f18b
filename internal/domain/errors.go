package domain

import "errors"

// Calculator errors. Invalid mutations are rejected with these sentinels and
// leave the prior state untouched.
var (
	ErrUnknownSkill      = errors.New("unknown skill")
	ErrItemNotFound      = errors.New("item not found in catalog")
	ErrNoSkillSelected   = errors.New("no skill selected")
	ErrNoItemSelected    = errors.New("no item selected")
	ErrScrollCapExceeded = errors.New("scroll slots exceed cap")
	ErrTierOutOfRange    = errors.New("tier out of range")
	ErrInvalidLevel      = errors.New("target level out of range")
	ErrSessionNotFound   = errors.New("calculator session not found")
)

// Plumbing errors.
var (
	ErrProfileNotFound = errors.New("player profile not found")
	ErrClanNotFound    = errors.New("clan not found")
	ErrUpstreamFailed  = errors.New("game API request failed")
)
