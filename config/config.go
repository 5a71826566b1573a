package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DatabaseDSN string

	AccessTokenSecret  string
	RefreshTokenSecret string

	RazorpayKeyID     string
	RazorpayKeySecret string

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string

	CloudinaryUrl string

	CORSOrigin string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		ServerPort:         os.Getenv("SERVER_PORT"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		RazorpayKeyID:      os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:  os.Getenv("RAZORPAY_KEY_SECRET"),
		KafkaBroker:        os.Getenv("KAFKA_BROKER"),
		KafkaTopic:         os.Getenv("KAFKA_TOPIC"),
		KafkaUsername:      os.Getenv("KAFKA_USERNAME"),
		KafkaPassword:      os.Getenv("KAFKA_PASSWORD"),
		CloudinaryUrl:      os.Getenv("CLOUDINARY_URL"),
		CORSOrigin:         os.Getenv("CORS_ORIGIN"),
	}
}
