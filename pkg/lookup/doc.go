// Package lookup provides asynchronous predicates that check a field value
// against an external store: a Redis set, a PostgreSQL query or a MongoDB
// collection.
//
// Every constructor returns a validator.AsyncPredicate, so a lookup plugs into
// a field chain through MustAsync and only runs on the asynchronous path:
//
//	v := validator.New[Signup]()
//	v.RuleForField("Email", func(s Signup) any { return s.Email }).
//	    Required().
//	    Email().
//	    MustAsync(lookup.RowAbsent[Signup](pool, "SELECT true FROM users WHERE email = $1")).
//	    WithMessage("is already registered")
//
//	out, err := v.ValidateAsync(ctx, signup).Await()
//
// Clients are owned by the caller. The package depends only on the narrow
// method sets it uses: *redis.Client, *pgxpool.Pool and *mongo.Collection
// satisfy them directly, and so do test fakes.
//
// Absent values (nil, nil pointers) and empty strings pass every lookup:
// there is nothing to look up, and presence is the job of Required.
//
// Store failures are returned as errors wrapping ErrLookupFailed together with
// a store specific sentinel. They abort the asynchronous validation run.
package lookup
