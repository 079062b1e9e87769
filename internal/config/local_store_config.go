package config

const (
	LocalStoreFile  = "file"
	LocalStoreRedis = "redis"
)

type LocalStoreConfig interface {
	GetLocalStoreKind() string
	GetLocalStoreFile() string
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
	GetRedisPrefix() string
}

type LocalStore struct{}

var _ LocalStoreConfig = LocalStore{}

func (LocalStore) GetLocalStoreKind() string {
	return GetEnv("LOCAL_STORE", LocalStoreFile)
}

func (LocalStore) GetLocalStoreFile() string {
	return GetEnv("LOCAL_STORE_FILE", "./data/local_identity.yaml")
}

func (LocalStore) GetRedisAddr() string {
	return GetEnv("REDIS_ADDR", "localhost:6379")
}

func (LocalStore) GetRedisPassword() string {
	return GetEnv("REDIS_PASSWORD", "")
}

func (LocalStore) GetRedisDB() int {
	return GetEnvInt("REDIS_DB", 0)
}

func (LocalStore) GetRedisPrefix() string {
	return GetEnv("REDIS_PREFIX", "")
}
