package lookup

import "errors"

var (
	ErrLookupFailed   = errors.New("lookup failed")
	ErrRedisLookup    = errors.New("redis set lookup failed")
	ErrPostgresLookup = errors.New("postgres row lookup failed")
	ErrMongoLookup    = errors.New("mongo document lookup failed")
)
