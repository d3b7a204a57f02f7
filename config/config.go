package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Deezer    DeezerConfig    `mapstructure:"deezer"`
	Game      GameConfig      `mapstructure:"game"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	AllowOrigins string        `mapstructure:"allow_origins"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type PostgresConfig struct {
	Port     string `mapstructure:"port"`
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Enabled      bool     `mapstructure:"enabled"`
	Brokers      []string `mapstructure:"brokers"`
	Topic        string   `mapstructure:"topic"`
	ConsumeTopic string   `mapstructure:"consume_topic"`
	DLQTopic     string   `mapstructure:"dlq_topic"`
	GroupID      string   `mapstructure:"group_id"`
	MaxRetries   int      `mapstructure:"max_retries"`
}

type DeezerConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

type GameConfig struct {
	GuessCooldown  time.Duration `mapstructure:"guess_cooldown"`
	TrackAttempts  int           `mapstructure:"track_attempts"`
	RoomCodeLength int           `mapstructure:"room_code_length"`
	Topics         []string      `mapstructure:"topics"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	Burst             int `mapstructure:"burst"`
	PerUserPerMinute  int `mapstructure:"per_user_per_minute"`
	PerUserBurst      int `mapstructure:"per_user_burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "quiz-service")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "development")

	v.SetDefault("server.port", "8083")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.allow_origins", "http://localhost:5173")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 5*time.Second)

	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.user", "myuser")
	v.SetDefault("postgres.password", "mypassword")
	v.SetDefault("postgres.db", "quizdb")
	v.SetDefault("postgres.sslmode", "disable")

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "quiz-events")
	v.SetDefault("kafka.consume_topic", "user-events")
	v.SetDefault("kafka.dlq_topic", "quiz-events-dlq")
	v.SetDefault("kafka.group_id", "quiz-service")
	v.SetDefault("kafka.max_retries", 3)

	v.SetDefault("deezer.base_url", "https://api.deezer.com")
	v.SetDefault("deezer.timeout", 10*time.Second)
	v.SetDefault("deezer.requests_per_second", 5)
	v.SetDefault("deezer.burst", 5)

	v.SetDefault("game.guess_cooldown", 5*time.Second)
	v.SetDefault("game.track_attempts", 5)
	v.SetDefault("game.room_code_length", 8)
	v.SetDefault("game.topics", []string{
		"love", "romantic", "pop", "ballad", "acoustic",
		"rnb", "chill", "indie", "classic", "indonesia",
	})

	v.SetDefault("ratelimit.requests_per_minute", 6000)
	v.SetDefault("ratelimit.burst", 200)
	v.SetDefault("ratelimit.per_user_per_minute", 240)
	v.SetDefault("ratelimit.per_user_burst", 20)
}

// Load builds the configuration from defaults, an optional config.yaml found in paths
// and QUIZ_ prefixed environment variables, in increasing priority.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	// ENV overrides with prefix QUIZ_ and dot-to-underscore replacement
	v.SetEnvPrefix("QUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
		zap.L().Warn("Configuration file not found, using defaults and environment", zap.Error(err))
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}

func Read() Config {
	if err := loadDotEnv(".env"); err != nil {
		zap.L().Warn("Failed to load .env", zap.Error(err))
	}

	config, err := Load(".", "./config", "/app")
	if err != nil {
		zap.L().Error("Configuration could not be parsed", zap.Error(err))
	}
	return config
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func (p PostgresConfig) DSN() string {
	return "host=" + p.Host +
		" port=" + p.Port +
		" user=" + p.User +
		" password=" + p.Password +
		" dbname=" + p.DB +
		" sslmode=" + p.SSLMode
}
