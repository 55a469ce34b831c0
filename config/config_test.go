package config

import "testing"

func TestLoadConfigRequiresMongoSettings(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("DB_NAME", "")

	if err := LoadConfig(); err == nil {
		t.Fatal("expected an error when MongoDB settings are missing")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "markham_taxi")

	if err := LoadConfig(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if AppConfig.AppPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", AppConfig.AppPort)
	}
	if AppConfig.TaxiPhoneNumber != "+14165668154" {
		t.Fatalf("expected default dispatch number, got %q", AppConfig.TaxiPhoneNumber)
	}
	if AppConfig.CORSOrigins != "*" {
		t.Fatalf("expected default CORS allow-all, got %q", AppConfig.CORSOrigins)
	}
	if AppConfig.TwilioAccountSID != "" {
		t.Fatalf("expected empty Twilio SID by default, got %q", AppConfig.TwilioAccountSID)
	}
	if IsProduction() {
		t.Fatal("default environment must not be production")
	}
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://db:27017")
	t.Setenv("DB_NAME", "markham_taxi")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550001111")
	t.Setenv("CORS_ORIGINS", "https://markhamtaxi.ca")

	if err := LoadConfig(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if AppConfig.MongoURL != "mongodb://db:27017" || AppConfig.DBName != "markham_taxi" {
		t.Fatalf("mongo settings not read from environment: %+v", AppConfig)
	}
	if AppConfig.TwilioPhoneNumber != "+15550001111" {
		t.Fatalf("twilio number not read from environment: %q", AppConfig.TwilioPhoneNumber)
	}
	if AppConfig.CORSOrigins != "https://markhamtaxi.ca" {
		t.Fatalf("cors origins not read from environment: %q", AppConfig.CORSOrigins)
	}
}
