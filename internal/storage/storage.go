package storage

import (
	"context"
	"errors"
	"os"

	"gemini2api/internal/core"
	"gemini2api/internal/util"

	"github.com/redis/go-redis/v9"
)

const statsRedisKey = "gemini2api:stats"

// FileStorage implements persistence using JSON files
type FileStorage struct {
	filePath string
}

func NewFileStorage(filePath string) *FileStorage {
	if filePath == "" {
		filePath = core.StatsFilePath
	}
	return &FileStorage{filePath: filePath}
}

func (fs *FileStorage) SaveStats(stats *core.RequestStats) error {
	data, err := util.MarshalJSON(stats)
	if err != nil {
		return err
	}
	return os.WriteFile(fs.filePath, data, core.FilePermissionReadWrite)
}

func (fs *FileStorage) LoadStats() (*core.RequestStats, error) {
	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &core.RequestStats{RequestHistory: []core.RequestRecord{}}, nil
		}
		return nil, err
	}

	var stats core.RequestStats
	if err := util.UnmarshalJSON(data, &stats); err != nil {
		return nil, err
	}

	if stats.RequestHistory == nil {
		stats.RequestHistory = []core.RequestRecord{}
	}

	return &stats, nil
}

func (fs *FileStorage) Close() error {
	return nil
}

// RedisStorage implements persistence using Redis
type RedisStorage struct {
	client *redis.Client
	ctx    context.Context
	key    string
}

// RedisStorageConfig Redis storage config
type RedisStorageConfig struct {
	URL string
	Key string
}

func NewRedisStorage(config RedisStorageConfig) (*RedisStorage, error) {
	opts, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	key := config.Key
	if key == "" {
		key = statsRedisKey
	}

	return &RedisStorage{client: client, ctx: ctx, key: key}, nil
}

func (rs *RedisStorage) SaveStats(stats *core.RequestStats) error {
	data, err := util.MarshalJSON(stats)
	if err != nil {
		return err
	}
	return rs.client.Set(rs.ctx, rs.key, data, 0).Err()
}

func (rs *RedisStorage) LoadStats() (*core.RequestStats, error) {
	val, err := rs.client.Get(rs.ctx, rs.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &core.RequestStats{RequestHistory: []core.RequestRecord{}}, nil
		}
		return nil, err
	}

	var stats core.RequestStats
	if err := util.UnmarshalJSON([]byte(val), &stats); err != nil {
		return nil, err
	}

	if stats.RequestHistory == nil {
		stats.RequestHistory = []core.RequestRecord{}
	}

	return &stats, nil
}

func (rs *RedisStorage) Close() error {
	return rs.client.Close()
}

// InitStorage selects the stats backend: Redis when REDIS_URL is set and
// reachable, otherwise a local JSON file.
func InitStorage(logger core.Logger) (core.StorageInterface, error) {
	redisURL := os.Getenv("REDIS_URL")

	if redisURL != "" {
		redisStorage, err := NewRedisStorage(RedisStorageConfig{
			URL: redisURL,
			Key: statsRedisKey,
		})
		if err != nil {
			logger.Warn("Failed to initialize Redis storage: %v, falling back to file storage", err)
			return NewFileStorage(core.StatsFilePath), nil
		}
		logger.Info("Using Redis storage")
		return redisStorage, nil
	}

	logger.Info("Using file storage")
	return NewFileStorage(core.StatsFilePath), nil
}
