package world

import "go.uber.org/zap"

func zapTick(tick int64) zap.Field {
	return zap.Int64("tick", tick)
}

func zapCount(n int) zap.Field {
	return zap.Int("count", n)
}

func zapEntity(key string, e Entity) zap.Field {
	return zap.Uint64(key, uint64(e))
}
