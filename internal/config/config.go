package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrEmptyPort       = errors.New("port is empty")
	ErrInvalidValue    = errors.New("value must be positive")
)

type Config struct {
	LogLevel   string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Lobby      Lobby     `yaml:"lobby"`
	Websocket  Websocket `yaml:"websocket"`
	Redis      Redis     `yaml:"redis"`
	NATS       NATS      `yaml:"nats"`
	Journal    Journal   `yaml:"journal"`
}

type Lobby struct {
	MailboxCapacity int `yaml:"mailbox-capacity" env:"MAILBOX_CAPACITY" env-default:"10"`
	EventBuffer     int `yaml:"event-buffer" env:"EVENT_BUFFER" env-default:"1024"`
}

type Websocket struct {
	PingInterval time.Duration `yaml:"ping-interval" env:"WS_PING_INTERVAL" env-default:"54s"`
	PongWait     time.Duration `yaml:"pong-wait" env:"WS_PONG_WAIT" env-default:"60s"`
	WriteWait    time.Duration `yaml:"write-wait" env:"WS_WRITE_WAIT" env-default:"10s"`
	ReadLimit    int64         `yaml:"read-limit" env:"WS_READ_LIMIT" env-default:"4096"`
}

type Redis struct {
	Enabled     bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host        string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	RecordTTL   time.Duration `yaml:"record-ttl" env:"REDIS_RECORD_TTL" env-default:"168h"`
	RecentLimit int           `yaml:"recent-limit" env:"REDIS_RECENT_LIMIT" env-default:"50"`
}

type NATS struct {
	URL     string `yaml:"url" env:"NATS_URL"`
	Subject string `yaml:"subject" env:"NATS_SUBJECT" env-default:"tictactoe.games"`
}

type Journal struct {
	Buffer int `yaml:"buffer" env:"JOURNAL_BUFFER" env-default:"256"`
}

// Load - reads the yaml file at path when it exists, otherwise the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - same as Load, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	if that.HTTPPort == "" {
		return fmt.Errorf("http-port: %w", ErrEmptyPort)
	}

	if that.SocketPort == "" {
		return fmt.Errorf("socket-port: %w", ErrEmptyPort)
	}

	positive := map[string]int64{
		"lobby.mailbox-capacity":  int64(that.Lobby.MailboxCapacity),
		"lobby.event-buffer":      int64(that.Lobby.EventBuffer),
		"journal.buffer":          int64(that.Journal.Buffer),
		"websocket.read-limit":    that.Websocket.ReadLimit,
		"websocket.ping-interval": int64(that.Websocket.PingInterval),
		"websocket.pong-wait":     int64(that.Websocket.PongWait),
		"websocket.write-wait":    int64(that.Websocket.WriteWait),
	}
	for key, value := range positive {
		if value <= 0 {
			return fmt.Errorf("%s: %w", key, ErrInvalidValue)
		}
	}

	if that.Websocket.PingInterval >= that.Websocket.PongWait {
		return fmt.Errorf("websocket.ping-interval must be shorter than websocket.pong-wait: %w", ErrInvalidValue)
	}

	if that.Redis.Enabled && that.Redis.Port == "" {
		return fmt.Errorf("redis.port: %w", ErrEmptyPort)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
