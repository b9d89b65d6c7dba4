package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Remote reservation API. Two deployment topologies are supported;
	// APIType selects which base URL the endpoint registry resolves against.
	APIType    string `mapstructure:"API_TYPE"`
	AWSBaseURL string `mapstructure:"AWS_BASE_URL"`
	K8SBaseURL string `mapstructure:"K8S_BASE_URL"`

	// Per-capability path suffixes, concatenated onto the active base URL.
	SignupPath            string `mapstructure:"SIGNUP_API"`
	LoginPath             string `mapstructure:"LOGIN_API"`
	LocationsPath         string `mapstructure:"LOCATIONS"`
	LocationsOptionsPath  string `mapstructure:"LOCATIONS_OPTIONS"`
	PopularDishesPath     string `mapstructure:"POPULAR_DISHES"`
	TablesPath            string `mapstructure:"TABLES"`
	BookingClientsPath    string `mapstructure:"BOOKING_CLIENTS"`
	ReservationsPath      string `mapstructure:"RESERVATIONS"`
	DeleteReservationPath string `mapstructure:"DELETE_RESERVATION"`
	ReviewsPath           string `mapstructure:"REVIEW_API"`
	DishesPath            string `mapstructure:"DISHES"`
	UsersProfilePath      string `mapstructure:"USERS_PROFILE"`
	PasswordPath          string `mapstructure:"PASSWORD"`
	FeedbacksPath         string `mapstructure:"FEEDBACKS"`
	CustomersPath         string `mapstructure:"CUSTOMERS"`
	WaiterBookingPath     string `mapstructure:"BOOKING_WAITER"`

	// Redis configuration (session storage only; no durable state is kept here).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Session lifetime in minutes. Sessions are short-lived and gone after
	// logout or expiry.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_TYPE", "aws")
	viper.SetDefault("AWS_BASE_URL", "http://localhost:9000")
	viper.SetDefault("K8S_BASE_URL", "http://localhost:9000")
	viper.SetDefault("SIGNUP_API", "/auth/sign-up")
	viper.SetDefault("LOGIN_API", "/auth/sign-in")
	viper.SetDefault("LOCATIONS", "/locations")
	viper.SetDefault("LOCATIONS_OPTIONS", "/locations/select-options")
	viper.SetDefault("POPULAR_DISHES", "/dishes/popular")
	viper.SetDefault("TABLES", "/bookings/tables")
	viper.SetDefault("BOOKING_CLIENTS", "/bookings/client")
	viper.SetDefault("RESERVATIONS", "/reservations")
	viper.SetDefault("DELETE_RESERVATION", "/reservations")
	viper.SetDefault("REVIEW_API", "/locations")
	viper.SetDefault("DISHES", "/dishes")
	viper.SetDefault("USERS_PROFILE", "/users/profile")
	viper.SetDefault("PASSWORD", "/users/profile/password")
	viper.SetDefault("FEEDBACKS", "/feedbacks")
	viper.SetDefault("CUSTOMERS", "/users/customers")
	viper.SetDefault("BOOKING_WAITER", "/bookings/waiter")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("SESSION_TTL_MINUTES", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// BaseURL resolves the base URL of the active deployment topology.
// Anything other than "k8s" resolves to the AWS topology.
func BaseURL() string {
	if AppConfig.APIType == "k8s" {
		return AppConfig.K8SBaseURL
	}
	return AppConfig.AWSBaseURL
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
