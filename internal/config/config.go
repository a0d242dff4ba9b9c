// Package config is the single source of truth for channel ids, task
// timings, asset paths and roster data. All other packages consume
// values resolved here.
package config

import (
	"os"
	"strconv"
	"time"
)

// DiscordConfig holds gateway credentials and channel routing.
type DiscordConfig struct {
	Token string

	// AnnouncementChannelID receives overtake and security alerts,
	// shared by every game mode.
	AnnouncementChannelID string

	// CleanupHistoryLimit is how many recent messages are scanned per
	// leaderboard channel at startup when removing stale bot posts.
	CleanupHistoryLimit int
}

// DefaultDiscord returns the default Discord configuration.
func DefaultDiscord() DiscordConfig {
	return DiscordConfig{
		AnnouncementChannelID: "1249887657761443841",
		CleanupHistoryLimit:   5,
	}
}

// DiscordFromEnv returns Discord configuration with env overrides.
func DiscordFromEnv() DiscordConfig {
	cfg := DefaultDiscord()
	cfg.Token = os.Getenv("DISCORD_TOKEN")
	if v := os.Getenv("ANNOUNCEMENT_CHANNEL_ID"); v != "" {
		cfg.AnnouncementChannelID = v
	}
	return cfg
}

// RiotConfig holds stats-provider credentials and routing.
type RiotConfig struct {
	Region    string // platform routing value, e.g. "na1"
	LoLAPIKey string
	TFTAPIKey string
}

// DefaultRiot returns the default Riot configuration.
func DefaultRiot() RiotConfig {
	return RiotConfig{Region: "na1"}
}

// RiotFromEnv returns Riot configuration with env overrides.
func RiotFromEnv() RiotConfig {
	cfg := DefaultRiot()
	if v := os.Getenv("RIOT_REGION"); v != "" {
		cfg.Region = v
	}
	cfg.LoLAPIKey = os.Getenv("LOL_API_KEY")
	cfg.TFTAPIKey = os.Getenv("TFT_API_KEY")
	return cfg
}

// TimingsConfig paces the recurring tasks.
type TimingsConfig struct {
	FetchInterval   time.Duration // one roster batch per tick
	DisplayInterval time.Duration // full render/publish cycle
	BatchSize       int           // players fetched per tick
	TopK            int           // positions watched for overtakes
}

// DefaultTimings returns the default task timings.
func DefaultTimings() TimingsConfig {
	return TimingsConfig{
		FetchInterval:   30 * time.Second,
		DisplayInterval: 2 * time.Minute,
		BatchSize:       10,
		TopK:            4,
	}
}

// TimingsFromEnv returns timings with env overrides.
func TimingsFromEnv() TimingsConfig {
	cfg := DefaultTimings()
	if v := getEnvInt("RANK_FETCH_INTERVAL_SECONDS", 0); v > 0 {
		cfg.FetchInterval = time.Duration(v) * time.Second
	}
	if v := getEnvInt("LEADERBOARD_UPDATE_INTERVAL_SECONDS", 0); v > 0 {
		cfg.DisplayInterval = time.Duration(v) * time.Second
	}
	if v := getEnvInt("API_BATCH_SIZE", 0); v > 0 {
		cfg.BatchSize = v
	}
	if v := getEnvInt("LEADERBOARD_TOP_K", 0); v > 0 {
		cfg.TopK = v
	}
	return cfg
}

// AssetsConfig locates fonts, tier icons and background art.
type AssetsConfig struct {
	FontPath          string
	IconDir           string
	LoLBackgroundPath string
	TFTBackgroundPath string
}

// DefaultAssets returns the default asset layout.
func DefaultAssets() AssetsConfig {
	return AssetsConfig{
		FontPath:          "assets/fonts/BebasNeue-Regular.ttf",
		IconDir:           "assets/img",
		LoLBackgroundPath: "assets/img/leaderboard_soloq.png",
		TFTBackgroundPath: "assets/img/leaderboard_tft.png",
	}
}

// AssetsFromEnv returns asset paths with env overrides.
func AssetsFromEnv() AssetsConfig {
	cfg := DefaultAssets()
	if v := os.Getenv("ASSET_FONT_PATH"); v != "" {
		cfg.FontPath = v
	}
	if v := os.Getenv("ASSET_ICON_DIR"); v != "" {
		cfg.IconDir = v
	}
	return cfg
}

// ServerConfig holds the read-only ops HTTP server settings.
type ServerConfig struct {
	Enabled bool
	Port    int
}

// DefaultServer returns the default server configuration.
func DefaultServer() ServerConfig {
	return ServerConfig{Enabled: true, Port: 3000}
}

// ServerFromEnv returns server configuration with env overrides.
func ServerFromEnv() ServerConfig {
	cfg := DefaultServer()
	if p := getEnvInt("PORT", 0); p > 0 {
		cfg.Port = p
	}
	if os.Getenv("DISABLE_HTTP_SERVER") == "true" {
		cfg.Enabled = false
	}
	return cfg
}

// SecurityConfig tunes the moderation-burst watcher.
type SecurityConfig struct {
	BanThreshold    int
	KickThreshold   int
	DeleteThreshold int
	Window          time.Duration
}

// DefaultSecurity returns the default watcher thresholds.
func DefaultSecurity() SecurityConfig {
	return SecurityConfig{
		BanThreshold:    2,
		KickThreshold:   2,
		DeleteThreshold: 2,
		Window:          5 * time.Minute,
	}
}

// Mode describes one tracked game mode.
type Mode struct {
	Name           string // display tag, e.g. "LoL"
	Game           string // riot API family: "lol" or "tft"
	QueueType      string // queue filter inside the ranked response
	ChannelID      string // leaderboard channel
	BackgroundPath string
}

// AppConfig is the complete application configuration.
type AppConfig struct {
	Discord  DiscordConfig
	Riot     RiotConfig
	Timings  TimingsConfig
	Assets   AssetsConfig
	Server   ServerConfig
	Security SecurityConfig
	Modes    []Mode
}

// Load returns the complete configuration with environment overrides.
func Load() AppConfig {
	assets := AssetsFromEnv()
	modes := []Mode{
		{
			Name:           "LoL",
			Game:           "lol",
			QueueType:      "RANKED_SOLO_5x5",
			ChannelID:      getEnvStr("LOL_LEADERBOARD_CHANNEL_ID", "1249993747119472693"),
			BackgroundPath: assets.LoLBackgroundPath,
		},
		{
			Name:           "TFT",
			Game:           "tft",
			QueueType:      "RANKED_TFT",
			ChannelID:      getEnvStr("TFT_LEADERBOARD_CHANNEL_ID", "1249993766300024842"),
			BackgroundPath: assets.TFTBackgroundPath,
		},
	}
	return AppConfig{
		Discord:  DiscordFromEnv(),
		Riot:     RiotFromEnv(),
		Timings:  TimingsFromEnv(),
		Assets:   assets,
		Server:   ServerFromEnv(),
		Security: DefaultSecurity(),
		Modes:    modes,
	}
}

func getEnvStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
