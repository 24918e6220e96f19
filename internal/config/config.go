// Package config reads the bot's configuration from the environment. A .env
// file is honored in development; real environment variables win.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvToken     = "DISCORD_TOKEN"
	EnvChannelID = "CONTEST_CHANNEL_ID"
	EnvGuildID   = "CONTEST_GUILD_ID"
	EnvFunny     = "FUNNY_REACTIONS"
	EnvBone      = "BONE_REACTIONS"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// Default reaction sets. Identifiers are unicode emoji or custom-emoji id
// strings; both categories can be overridden from the environment.
var (
	defaultFunnyReactions = []string{"😂", "🤣", "😹", "💀", "😆"}
	defaultBoneReactions  = []string{"🦴"}
)

// Config holds the bot's runtime configuration.
type Config struct {
	Token          string
	GuildID        string
	FunnyReactions []string
	BoneReactions  []string
	LogLevel       string
	LogFormat      string
}

// Load reads the configuration, loading .env first when present. The contest
// channel id is deliberately absent here: it is read through ChannelID at
// invocation time.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Token:          strings.TrimSpace(os.Getenv(EnvToken)),
		GuildID:        strings.TrimSpace(os.Getenv(EnvGuildID)),
		FunnyReactions: getList(EnvFunny, defaultFunnyReactions),
		BoneReactions:  getList(EnvBone, defaultBoneReactions),
		LogLevel:       getEnv(EnvLogLevel, "info"),
		LogFormat:      getEnv(EnvLogFormat, "console"),
	}
}

// ChannelID reads the contest channel id at call time, so a misconfigured
// channel can be fixed without restarting the bot.
func ChannelID() string {
	return strings.TrimSpace(os.Getenv(EnvChannelID))
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getList parses a comma-separated list, trimming whitespace and dropping
// empty entries. An unset or all-empty value yields the fallback.
func getList(key string, fallback []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
