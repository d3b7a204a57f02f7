package initializer

import (
	"context"
	"fmt"
	"time"

	"quiz-service/config"
	"quiz-service/infra/redis"

	"go.uber.org/zap"
)

// InitRoomRedis returns nil when room notifications are disabled or Redis is unreachable.
func InitRoomRedis(appConfig config.Config) *redis.RedisManager {
	if !appConfig.Redis.Enabled {
		return nil
	}
	address := fmt.Sprintf("%s:%s", appConfig.Redis.Host, appConfig.Redis.Port)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisManager, err := redis.NewRedisManager(ctx, address, appConfig.Redis.Password, appConfig.Redis.DB)
	if err != nil {
		zap.L().Warn("Room notifications disabled", zap.String("address", address), zap.Error(err))
		return nil
	}
	return redisManager
}
