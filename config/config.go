package config

import (
	"os"
	"strconv"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	QueueRedis  = "redis"
	QueueMemory = "memory"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Ledger   LedgerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Addr string
	// CallerHeader 攜帶呼叫者帳號地址的 header
	CallerHeader string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LedgerConfig 帳本儲存與事件佇列的選擇
type LedgerConfig struct {
	Store       string
	Queue       string
	QueueBuffer int
	ConsumerID  string
}

type LogConfig struct {
	Level string
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:   GetServerConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
		Ledger:   GetLedgerConfig(),
		Log:      LogConfig{Level: getEnv("LOG_LEVEL", "info")},
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server: ServerConfig{
			Addr:         ":0",
			CallerHeader: "X-Caller-Address",
		},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Ledger: LedgerConfig{
			Store:       StorePostgres,
			Queue:       QueueMemory,
			QueueBuffer: 16,
		},
		Log: LogConfig{Level: "debug"},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Addr:         getEnv("SERVER_ADDR", ":8080"),
		CallerHeader: getEnv("CALLER_HEADER", "X-Caller-Address"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetLedgerConfig() LedgerConfig {
	buffer, err := strconv.Atoi(getEnv("LEDGER_QUEUE_BUFFER", "1024"))
	if err != nil {
		panic(err)
	}

	store := getEnv("LEDGER_STORE", StorePostgres)
	queue := getEnv("LEDGER_QUEUE", QueueRedis)
	// 記憶體帳本沒有 Redis 可用
	if store == StoreMemory {
		queue = QueueMemory
	}

	return LedgerConfig{
		Store:       store,
		Queue:       queue,
		QueueBuffer: buffer,
		ConsumerID:  getEnv("LEDGER_CONSUMER_ID", ""),
	}
}

// UsesRedis 回報目前設定是否需要 Redis 連線
func (c *Config) UsesRedis() bool {
	return c.Ledger.Store == StorePostgres || c.Ledger.Queue == QueueRedis
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
