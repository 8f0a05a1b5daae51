package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string        `yaml:"env" env:"ENV" env-default:"local"`
	DSN        string        `yaml:"dsn" env:"DSN" env-required:"true"`
	TokenTTL   time.Duration `yaml:"token_ttl" env-default:"15m"`
	RefreshTTL time.Duration `yaml:"refresh_ttl" env-default:"168h"`
	AppSecret  string        `yaml:"app_secret" env:"APP_SECRET" env-required:"true"`
	HTTP       HTTPConfig    `yaml:"http"`
	S3         S3Config      `yaml:"s3"`
	Redis      RedisConfig   `yaml:"redis"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"8080"`
}

type S3Config struct {
	Region    string        `yaml:"region" env:"AWS_REGION"`
	Bucket    string        `yaml:"bucket" env:"AWS_BUCKET_NAME"`
	UploadTTL time.Duration `yaml:"upload_ttl" env-default:"1h"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env-default:"localhost:6379"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" env-default:"0"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
