package api

import "context"

type ctxKey string

const ItemIDKey ctxKey = "itemID"

func ItemIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ItemIDKey).(string)
	return id, ok
}
