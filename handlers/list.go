package handlers

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"

	"RealtyAPI/store"
	"RealtyAPI/utils"
)

// listDocuments runs a filtered find and normalizes the result, serving it
// from the cache when the collection has not been written since.
func listDocuments(
	ctx context.Context,
	s store.Store,
	cache *utils.Cache,
	coll store.Collection,
	filter bson.M,
	limit int64,
) ([]map[string]any, error) {
	params := map[string]string{"limit": strconv.FormatInt(limit, 10)}
	for k, v := range filter {
		params[k] = fmt.Sprint(v)
	}

	prefix := string(coll)
	generation, err := cache.Generation(ctx, prefix)
	cacheable := err == nil
	if err != nil {
		utils.Logger.WithError(err).Warnf("cache generation lookup failed for %s", prefix)
	}
	key := utils.GenerateQueryCacheKey(prefix, generation, params)

	if cacheable {
		var cached []map[string]any
		hit, err := cache.Get(ctx, key, &cached)
		if err != nil {
			utils.Logger.WithError(err).Warnf("cache read failed for %s", key)
		} else if hit {
			return cached, nil
		}
	}

	docs, err := s.Find(ctx, coll, filter, limit)
	if err != nil {
		return nil, err
	}
	out := utils.NormalizeDocuments(docs)

	if cacheable {
		if err := cache.Set(ctx, key, out); err != nil {
			utils.Logger.WithError(err).Warnf("cache write failed for %s", key)
		}
	}
	return out, nil
}

func invalidateList(ctx context.Context, cache *utils.Cache, coll store.Collection) {
	if err := cache.Invalidate(ctx, string(coll)); err != nil {
		utils.Logger.WithError(err).Warnf("cache invalidation failed for %s", coll)
	}
}
