package lookup

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/verdict/pkg/validator"
)

// Counter counts documents matching a filter. *mongo.Collection satisfies it.
type Counter interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
}

// DocumentExists passes when a document whose field equals the value exists.
func DocumentExists[T any](c Counter, field string) validator.AsyncPredicate[T] {
	return documentPresence[T](c, field, true)
}

// DocumentAbsent passes when no document has field equal to the value.
func DocumentAbsent[T any](c Counter, field string) validator.AsyncPredicate[T] {
	return documentPresence[T](c, field, false)
}

func documentPresence[T any](c Counter, field string, want bool) validator.AsyncPredicate[T] {
	return func(ctx context.Context, _ T, value any) (bool, error) {
		v, ok := subject(value)
		if !ok {
			return true, nil
		}
		n, err := c.CountDocuments(ctx, bson.D{{Key: field, Value: v}}, options.Count().SetLimit(1))
		if err != nil {
			return false, errors.Join(ErrLookupFailed, ErrMongoLookup, err)
		}
		return (n > 0) == want, nil
	}
}
