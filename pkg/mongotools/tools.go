package mongotools

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/txnkit/pkg/errors"
)

// SetAll merges field updates into a single $set document.
func SetAll(fieldKVs ...bson.M) bson.M {
	s := make(map[string]any, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}

	return bson.M{"$set": bson.M(s)}
}

func All() bson.M {
	return bson.M{}
}

func FilterByID(id string) bson.M {
	return bson.M{"_id": id}
}

func Field[T any](field string, value *T) bson.M {
	return bson.M{field: value}
}

// Collect reads and decodes every document remaining in the cursor.
func Collect[T any](ctx context.Context, c *mongo.Cursor) ([]T, error) {
	defer c.Close(ctx)

	var items []T
	for c.Next(ctx) {
		var item T
		if err := c.Decode(&item); err != nil {
			return nil, errors.WrapFail(err, "decode document")
		}

		items = append(items, item)
	}

	return items, c.Err()
}
