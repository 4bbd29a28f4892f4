package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"go-traveler-registry/logging"
	"go-traveler-registry/redis"
)

type Config struct {
	ServerConfig ServerConfig `json:"server_config"`

	LogLevel string `json:"log_level,omitempty"`

	ReceiptPrivateKeyPath string `json:"receipt_private_key_path"`
	ReceiptIssuerId       string `json:"receipt_issuer_id"`

	StorageType         string                    `json:"storage_type"`
	RedisConfig         redis.RedisConfig         `json:"redis_config,omitempty"`
	RedisSentinelConfig redis.RedisSentinelConfig `json:"redis_sentinel_config,omitempty"`
}

func main() {
	configPath := flag.String("config", "", "Path for the config.json to use")
	flag.Parse()

	if *configPath == "" {
		slog.Error("please provide a config path using the --config flag")
		os.Exit(1)
	}

	config, err := readConfigFile(*configPath)
	if err != nil {
		slog.Error("failed to read config file", "path", *configPath, "error", err)
		os.Exit(1)
	}

	logging.InitLogger(config.LogLevel)
	slog.Info("using config", "path", *configPath)
	slog.Info("hosting on", "host", config.ServerConfig.Host, "port", config.ServerConfig.Port)

	receiptCreator, err := NewJwtReceiptCreator(config.ReceiptPrivateKeyPath, config.ReceiptIssuerId)
	if err != nil {
		slog.Error("failed to instantiate receipt creator", "error", err)
		os.Exit(1)
	}

	sessionStorage, err := createSessionStorage(&config)
	if err != nil {
		slog.Error("failed to instantiate session storage", "error", err)
		os.Exit(1)
	}

	serverState := ServerState{
		sessionStorage: sessionStorage,
		receiptCreator: receiptCreator,
	}

	server, err := NewServer(&serverState, config.ServerConfig)
	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	err = server.ListenAndServe()
	if err != nil {
		slog.Error("failed to listen and serve", "error", err)
		os.Exit(1)
	}
}

func readConfigFile(path string) (Config, error) {
	configBytes, err := os.ReadFile(path)

	if err != nil {
		return Config{}, err
	}

	var config Config
	err = json.Unmarshal(configBytes, &config)

	if err != nil {
		return Config{}, err
	}

	return config, nil
}

func createSessionStorage(config *Config) (SessionStorage, error) {
	if config.StorageType == "redis" {
		slog.Info("Using redis session storage")
		client, err := redis.NewRedisClient(&config.RedisConfig)
		if err != nil {
			return nil, err
		}
		return NewRedisSessionStorage(client, config.RedisConfig.Namespace), nil
	}
	if config.StorageType == "redis_sentinel" {
		slog.Info("Using redis sentinel session storage")
		client, err := redis.NewRedisSentinelClient(&config.RedisSentinelConfig)
		if err != nil {
			return nil, err
		}
		return NewRedisSessionStorage(client, config.RedisSentinelConfig.Namespace), nil
	}
	if config.StorageType == "memory" {
		slog.Info("Using in memory session storage")
		return NewInMemorySessionStorage(), nil
	}
	return nil, fmt.Errorf("%v is not a valid storage type", config.StorageType)
}
