package note

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/ribgsilva/note-crud/sys"
)

// cache failures are logged and the caller carries on against the database

func cacheGet(ctx context.Context, id uuid.UUID) (Note, bool) {
	cache := sys.R.Cache
	if cache == nil {
		return Note{}, false
	}
	logger := sys.R.Log
	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	get, err := cache.Get(tcCtx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Errorw("cache get", "key", key, "ERROR", err)
		}
		return Note{}, false
	}

	var n Note
	if err := json.Unmarshal([]byte(get), &n); err != nil {
		logger.Errorw("cache decode", "key", key, "ERROR", err)
		return Note{}, false
	}
	return n, true
}

func cacheSet(ctx context.Context, n Note) {
	cache := sys.R.Cache
	if cache == nil {
		return
	}
	logger := sys.R.Log
	key := fmt.Sprintf(noteKey, n.Id)

	data, err := json.Marshal(n)
	if err != nil {
		logger.Errorw("cache encode", "key", key, "ERROR", err)
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Set(tcCtx, key, string(data), sys.Configs.Cache.CacheTTL).Err(); err != nil {
		logger.Errorw("cache set", "key", key, "ERROR", err)
	}
}

func cacheDel(ctx context.Context, id uuid.UUID) {
	cache := sys.R.Cache
	if cache == nil {
		return
	}
	key := fmt.Sprintf(noteKey, id)

	tcCtx, tcCancel := context.WithTimeout(ctx, sys.Configs.Cache.OperationTimeout)
	defer tcCancel()
	if err := cache.Del(tcCtx, key).Err(); err != nil {
		sys.R.Log.Errorw("cache del", "key", key, "ERROR", err)
	}
}
