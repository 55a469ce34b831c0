package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	// MongoDB configuration (required).
	MongoURL string `mapstructure:"MONGO_URL"`
	DBName   string `mapstructure:"DB_NAME"`

	// Twilio configuration. Optional: when any of the first three is
	// missing, SMS dispatch is skipped and bookings record sms_sent=false.
	TwilioAccountSID  string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `mapstructure:"TWILIO_PHONE_NUMBER"`

	// Dispatch line that receives booking SMS notifications.
	TaxiPhoneNumber string `mapstructure:"TAXI_PHONE_NUMBER"`

	// Comma-separated CORS allow-list, "*" allows every origin.
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`
}

var AppConfig Config

// LoadConfig reads configuration from config.yaml (if present) and the
// environment. Missing MongoDB settings are a fatal startup error.
func LoadConfig() error {
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
	viper.SetDefault("MONGO_URL", "")
	viper.SetDefault("DB_NAME", "")
	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_PHONE_NUMBER", "")
	viper.SetDefault("TAXI_PHONE_NUMBER", "+14165668154")
	viper.SetDefault("CORS_ORIGINS", "*")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if AppConfig.MongoURL == "" || AppConfig.DBName == "" {
		return fmt.Errorf("missing MongoDB configuration: MONGO_URL and DB_NAME are required")
	}
	return nil
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
