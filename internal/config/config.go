package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	GoogleAds GoogleAds `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Audit     Audit     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"fastmcp_host"`
	Port string `mapstructure:"fastmcp_port"`
}

type GoogleAds struct {
	BaseURL         string `mapstructure:"google_ads_base_url"`
	Version         string `mapstructure:"google_ads_api_version"`
	URL             string `mapstructure:"-"`
	DeveloperToken  string `mapstructure:"google_ads_developer_token"`
	ClientID        string `mapstructure:"google_ads_client_id"`
	ClientSecret    string `mapstructure:"google_ads_client_secret"`
	RefreshToken    string `mapstructure:"google_ads_refresh_token"`
	LoginCustomerID string `mapstructure:"google_ads_login_customer_id"`
	CredentialsFile string `mapstructure:"google_ads_credentials"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Audit struct {
	Enabled       bool   `mapstructure:"audit_enabled"`
	RetentionDays int    `mapstructure:"audit_retention_days"`
	RetentionCron string `mapstructure:"audit_retention_cron"`
}

func SetDefaults() {
	viper.SetDefault("FASTMCP_HOST", "0.0.0.0")
	viper.SetDefault("FASTMCP_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_API_VERSION", "v23")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")
	viper.SetDefault("GOOGLE_ADS_CREDENTIALS", "google-ads.yaml")

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_mcp")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUDIT_ENABLED", false)
	viper.SetDefault("AUDIT_RETENTION_DAYS", 90)
	viper.SetDefault("AUDIT_RETENTION_CRON", "0 2 * * *") // daily at 02:00
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("no .env file read by viper, using process environment: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if !config.GoogleAds.hasCredentials() {
		if err := loadCredentialsFile(&config.GoogleAds); err != nil {
			logrus.Debug("no google-ads.yaml credentials file loaded: ", err)
		}
	}

	if err := config.GoogleAds.validate(); err != nil {
		return nil, err
	}

	config.GoogleAds.LoginCustomerID = NormalizeCustomerID(config.GoogleAds.LoginCustomerID)
	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (g GoogleAds) hasCredentials() bool {
	return g.DeveloperToken != "" &&
		g.ClientID != "" &&
		g.ClientSecret != "" &&
		g.RefreshToken != ""
}

// validate fails fast so a misconfigured container exits before binding.
func (g GoogleAds) validate() error {
	missing := []string{}
	if g.DeveloperToken == "" {
		missing = append(missing, "GOOGLE_ADS_DEVELOPER_TOKEN")
	}
	if g.ClientID == "" {
		missing = append(missing, "GOOGLE_ADS_CLIENT_ID")
	}
	if g.ClientSecret == "" {
		missing = append(missing, "GOOGLE_ADS_CLIENT_SECRET")
	}
	if g.RefreshToken == "" {
		missing = append(missing, "GOOGLE_ADS_REFRESH_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf(
			"missing Google Ads credentials (%s); set the environment variables or provide a google-ads.yaml file via GOOGLE_ADS_CREDENTIALS",
			strings.Join(missing, ", "),
		)
	}
	return nil
}

// loadCredentialsFile fills empty credential fields from the same
// google-ads.yaml file the official client libraries read.
func loadCredentialsFile(ads *GoogleAds) error {
	path := ads.CredentialsFile
	if path == "" {
		path = "google-ads.yaml"
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	if ads.DeveloperToken == "" {
		ads.DeveloperToken = v.GetString("developer_token")
	}
	if ads.ClientID == "" {
		ads.ClientID = v.GetString("client_id")
	}
	if ads.ClientSecret == "" {
		ads.ClientSecret = v.GetString("client_secret")
	}
	if ads.RefreshToken == "" {
		ads.RefreshToken = v.GetString("refresh_token")
	}
	if ads.LoginCustomerID == "" {
		ads.LoginCustomerID = v.GetString("login_customer_id")
	}

	logrus.WithField("path", path).Info("Google Ads credentials loaded from file")
	return nil
}

// NormalizeCustomerID strips the dashes and spaces users copy out of the
// Ads UI. The API only accepts digit-only customer ids.
func NormalizeCustomerID(id string) string {
	return strings.TrimSpace(strings.ReplaceAll(id, "-", ""))
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env file loaded from: ", location)
			return
		}
	}
}
