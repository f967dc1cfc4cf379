package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type TelegramBot struct {
	Token   string
	BotName string
	AppName string
}

type Rooms struct {
	TTL           time.Duration
	SweepInterval time.Duration
	CleanupPeriod int
}

type Config struct {
	HTTP        HTTPServer
	Redis       RedisCache
	Postgres    Postgres
	TelegramBot TelegramBot
	Rooms       Rooms
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:        *newHTTP(),
		Redis:       *newRedis(),
		Postgres:    *newPostgres(),
		TelegramBot: *newTelegramBot(),
		Rooms:       *newRooms(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "kinoduet"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newTelegramBot() *TelegramBot {
	return &TelegramBot{
		Token:   getenv("TELEGRAM_TOKEN", ""),
		BotName: getenv("TELEGRAM_BOT_NAME", "kinoduet_bot"),
		AppName: getenv("TELEGRAM_APP_NAME", "match"),
	}
}

func newRooms() *Rooms {
	return &Rooms{
		TTL:           getenvDuration("ROOM_TTL", 30*time.Minute),
		SweepInterval: getenvDuration("ROOM_SWEEP_INTERVAL", time.Minute),
		CleanupPeriod: getenvInt("ROOM_CLEANUP_PERIOD", 20),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("%s bad duration for %s : %v. Using default %s", logtag, key, err, defaultValue)
		return defaultValue
	}
	return d
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("%s bad int for %s : %v. Using default %d", logtag, key, err, defaultValue)
		return defaultValue
	}
	return n
}
