package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	ServerPort    int
	DataDir       string
	AdminPassword string
	JWTSecret     string

	RedisAddr     string
	RedisPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MinioPublicURL string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}
	if !viper.IsSet("DATA_DIR") {
		return nil, fmt.Errorf("DATA_DIR is required")
	}
	if !viper.IsSet("ADMIN_PASSWORD") {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}
	if !viper.IsSet("JWT_SECRET") {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	viper.SetDefault("MINIO_BUCKET", "studio-media")

	return &Settings{
		ServerPort:    viper.GetInt("SERVER_PORT"),
		DataDir:       viper.GetString("DATA_DIR"),
		AdminPassword: viper.GetString("ADMIN_PASSWORD"),
		JWTSecret:     viper.GetString("JWT_SECRET"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		MinioBucket:    viper.GetString("MINIO_BUCKET"),
		MinioPublicURL: viper.GetString("MINIO_PUBLIC_URL"),
	}, nil
}
