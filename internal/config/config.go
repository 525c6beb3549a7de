package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string    `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort        string    `yaml:"socket-port" env:"SOCKET_PORT" env-default:"7777"`
	Redis             Redis     `yaml:"redis"`
	SQLiteStoragePath string    `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./tictactoe.db"`
	JWTSecretKey      string    `yaml:"jwt-secret-key" env:"JWT_SECRET_KEY" env-required:"true"`
	Room              Room      `yaml:"room"`
	Bot               Bot       `yaml:"bot"`
	Telemetry         Telemetry `yaml:"telemetry"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Room struct {
	TTL          time.Duration `yaml:"ttl" env:"ROOM_TTL" env-default:"2h"`
	CodeAttempts int           `yaml:"code-attempts" env:"ROOM_CODE_ATTEMPTS" env-default:"10"`
}

type Bot struct {
	MoveDelay  time.Duration `yaml:"move-delay" env:"BOT_MOVE_DELAY" env-default:"500ms"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"BOT_SESSION_TTL" env-default:"24h"`
}

type Telemetry struct {
	// OTLPEndpoint is a gRPC collector address. Telemetry export is off when it is empty.
	OTLPEndpoint string `yaml:"otlp-endpoint" env:"OTLP_ENDPOINT"`
	ServiceName  string `yaml:"service-name" env:"SERVICE_NAME" env-default:"tictactoe-rooms"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
