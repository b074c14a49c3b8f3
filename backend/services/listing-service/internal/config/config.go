package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/harborview/realestate/backend/shared/go-utils"
)

type Config struct {
	OrganizationName string
	AppName          string
	AppPort          string
	AppUrl           string
	SiteName         string
	Env              string
	DevMode          bool

	// Store
	StoreURL    string
	StoreKey    string
	DatabaseURL string

	// Identity provider
	JWTSecret []byte

	// Notifications
	SendgridAPIKey     string
	SendgridFromEmail  string
	InquiryNotifyEmail string
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioFromPhone    string
	InquiryNotifyPhone string

	// Feature-flag snapshots
	LDFlag_SeedDbWithDemoProperties bool
	LDFlag_ListingsPageSize         int
	LDFlag_FeaturedPropertiesLimit  int
	LDFlag_CORSHighSecurity         bool

	ldClient *ld.LDClient
}

const (
	OrganizationName    = utils.OrganizationName
	DefaultAppName      = "listing-service"
	DefaultAppPort      = "3000"
	LDConnectionTimeout = 5 * time.Second
)

// build-time override, set with -ldflags
var AppName = DefaultAppName

// LoadConfig loads .env (when present), then the environment, and exits the
// process when a required setting is missing.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		utils.Logger.WithError(err).Warn("Ignoring unreadable .env file")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	cfg, err := Load(os.Getenv)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Invalid configuration")
	}

	utils.Logger.Infof("Loaded config for %s (env=%s, store=%s)", cfg.AppName, cfg.Env, utils.RedactURL(cfg.DatabaseURL))
	return cfg
}

// Load builds a Config from getenv. It never exits, so tests can drive it.
func Load(getenv func(string) string) (*Config, error) {
	//----------------------------------------------------------------------
	// 1) Required store settings
	//----------------------------------------------------------------------
	storeURL := strings.TrimSpace(getenv("STORE_URL"))
	if storeURL == "" {
		return nil, errors.New("STORE_URL env var is missing")
	}
	storeKey := strings.TrimSpace(getenv("STORE_KEY"))
	if storeKey == "" {
		return nil, errors.New("STORE_KEY env var is missing")
	}
	databaseURL, err := utils.WithCredential(storeURL, storeKey)
	if err != nil {
		return nil, fmt.Errorf("STORE_URL: %w", err)
	}

	//----------------------------------------------------------------------
	// 2) Runtime environment vars
	//----------------------------------------------------------------------
	env := strings.ToLower(envOr(getenv, "ENV", "production"))
	devMode := env == "development" || env == "dev"

	cfg := &Config{
		OrganizationName: OrganizationName,
		AppName:          AppName,
		AppPort:          envOr(getenv, "APP_PORT", DefaultAppPort),
		AppUrl:           strings.TrimRight(envOr(getenv, "SITE_URL", utils.DefaultSiteURL), "/"),
		SiteName:         envOr(getenv, "SITE_NAME", utils.DefaultSiteName),
		Env:              env,
		DevMode:          devMode,

		StoreURL:    storeURL,
		StoreKey:    storeKey,
		DatabaseURL: databaseURL,

		JWTSecret: []byte(getenv("AUTH_JWT_SECRET")),

		SendgridAPIKey:     getenv("SENDGRID_API_KEY"),
		SendgridFromEmail:  getenv("SENDGRID_FROM_EMAIL"),
		InquiryNotifyEmail: getenv("INQUIRY_NOTIFY_EMAIL"),
		TwilioAccountSID:   getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:    getenv("TWILIO_FROM_PHONE"),
		InquiryNotifyPhone: getenv("INQUIRY_NOTIFY_PHONE"),
	}
	if len(cfg.JWTSecret) == 0 {
		utils.Logger.Warn("AUTH_JWT_SECRET is empty; every visitor is anonymous")
	}

	//----------------------------------------------------------------------
	// 3) LaunchDarkly client & flags
	//----------------------------------------------------------------------
	ldClient, err := newLDClient(getenv("LD_SDK_KEY"))
	if err != nil {
		return nil, err
	}
	cfg.ldClient = ldClient

	ctx := ldcontext.NewWithKind("service", AppName)

	cfg.LDFlag_SeedDbWithDemoProperties = boolFlag(ldClient, ctx, "seed_db_with_demo_properties", false)
	cfg.LDFlag_CORSHighSecurity = boolFlag(ldClient, ctx, "cors_high_security", false)
	cfg.LDFlag_ListingsPageSize = positiveIntFlag(ldClient, ctx, "listings_page_size", utils.DefaultListingsPageSize)
	cfg.LDFlag_FeaturedPropertiesLimit = positiveIntFlag(ldClient, ctx, "featured_properties_limit", utils.DefaultFeaturedLimit)

	return cfg, nil
}

// Close releases the LaunchDarkly client.
func (c *Config) Close() {
	if c.ldClient != nil {
		_ = c.ldClient.Close()
	}
}

func envOr(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}

// newLDClient returns an offline client (every flag at its default) when no
// SDK key is configured.
func newLDClient(sdkKey string) (*ld.LDClient, error) {
	if sdkKey == "" {
		utils.Logger.Info("LD_SDK_KEY not set; feature flags use their defaults")
		return ld.MakeCustomClient("", ld.Config{Offline: true}, 0)
	}

	client, err := ld.MakeClient(sdkKey, LDConnectionTimeout)
	if err != nil {
		return nil, fmt.Errorf("create LaunchDarkly client: %w", err)
	}
	if !client.Initialized() {
		utils.Logger.Warn("LaunchDarkly client failed to initialize; flags use their defaults")
	}
	return client, nil
}

func boolFlag(c *ld.LDClient, ctx ldcontext.Context, key string, def bool) bool {
	v, err := c.BoolVariation(key, ctx, def)
	if err != nil {
		utils.Logger.WithError(err).Debugf("%s flag unavailable; using %t", key, def)
		return def
	}
	utils.Logger.Debugf("%s flag: %t", key, v)
	return v
}

func positiveIntFlag(c *ld.LDClient, ctx ldcontext.Context, key string, def int) int {
	v, err := c.IntVariation(key, ctx, def)
	if err != nil || v < 1 {
		utils.Logger.Debugf("%s flag unavailable or invalid; using %d", key, def)
		return def
	}
	utils.Logger.Debugf("%s flag: %d", key, v)
	return v
}
