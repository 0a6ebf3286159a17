package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	NATS   NATSConfig   `mapstructure:"nats"`
	Game   GameConfig   `mapstructure:"game"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type ServerConfig struct {
	Addr           string `mapstructure:"addr"`
	Path           string `mapstructure:"path"`
	OutboundBuffer int    `mapstructure:"outbound_buffer"`
}

// RedisConfig an empty Addr keeps game records in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
	Key      string `mapstructure:"key"`
}

// NATSConfig an empty URL disables the event mirror.
type NATSConfig struct {
	URL           string        `mapstructure:"url"`
	Subject       string        `mapstructure:"subject"`
	MaxReconnects int           `mapstructure:"max_reconnects"`
	ReconnectWait time.Duration `mapstructure:"reconnect_wait"`
}

type GameConfig struct {
	RobotStrategy string `mapstructure:"robot_strategy"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "shangdaren")
	v.SetDefault("server.addr", ":9998")
	v.SetDefault("server.path", "/ws")
	v.SetDefault("server.outbound_buffer", 256)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.key", "shangdaren:game")
	v.SetDefault("nats.url", "")
	v.SetDefault("nats.subject", "shangdaren.session")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", 2*time.Second)
	v.SetDefault("game.robot_strategy", "level1")
}

// Load 从指定路径加载配置，路径为空时只用默认值和环境变量
// 环境变量以 SDR_ 开头，例如 SDR_REDIS_ADDR
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("sdr")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
