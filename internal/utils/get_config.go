package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort            string `yaml:"APP_PORT"`
	RateLimitPerSecond string `yaml:"RATE_LIMIT_PER_SECOND"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// JWT
	JWTSecret     string `yaml:"JWT_SECRET"`
	JWTTTLMinutes string `yaml:"JWT_TTL_MINUTES"`

	// AWS S3 configuration
	AWSS3Bucket    string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region    string `yaml:"AWS_S3_REGION"`
	AWSAccessKey   string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey   string `yaml:"AWS_SECRET_KEY"`
	AWSS3Endpoint  string `yaml:"AWS_S3_ENDPOINT"`
	AWSS3PublicURL string `yaml:"AWS_S3_PUBLIC_URL"`

	// Seed data
	IngredientsFile string `yaml:"INGREDIENTS_FILE"`
	TagsFile        string `yaml:"TAGS_FILE"`
}

var (
	config Config

	defaults = map[string]string{
		"APP_PORT":              "8000",
		"RATE_LIMIT_PER_SECOND": "20",
		"DB_PORT":               "5432",
		"DB_SSLMODE":            "disable",
		"JWT_TTL_MINUTES":       "1440",
	}
)

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}

// LoadConfig reads config.yaml (or CONFIG_PATH). A missing file is not
// fatal: values then come from the environment and defaults.
func LoadConfig() {
	file, err := os.ReadFile(configPath())
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

func fromFile(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "RATE_LIMIT_PER_SECOND":
		return config.RateLimitPerSecond
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_TTL_MINUTES":
		return config.JWTTTLMinutes
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "AWS_S3_ENDPOINT":
		return config.AWSS3Endpoint
	case "AWS_S3_PUBLIC_URL":
		return config.AWSS3PublicURL
	case "INGREDIENTS_FILE":
		return config.IngredientsFile
	case "TAGS_FILE":
		return config.TagsFile
	default:
		return ""
	}
}

// GetConfig resolves key from the environment, then config.yaml, then the
// built-in default.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if v := fromFile(key); v != "" {
		return v
	}
	return defaults[key]
}

func GetConfigInt(key string) int {
	v, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		d, _ := strconv.Atoi(defaults[key])
		return d
	}
	return v
}
