package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvToken, "tok-123")

	cfg := Load()

	assert.Equal(t, "tok-123", cfg.Token)
	assert.Empty(t, cfg.GuildID)
	assert.Equal(t, []string{"😂", "🤣", "😹", "💀", "😆"}, cfg.FunnyReactions)
	assert.Equal(t, []string{"🦴"}, cfg.BoneReactions)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_ReactionOverrides(t *testing.T) {
	t.Setenv(EnvFunny, " 🤣, 927364 ,,😂 ")
	t.Setenv(EnvBone, "🦴,111222")

	cfg := Load()

	assert.Equal(t, []string{"🤣", "927364", "😂"}, cfg.FunnyReactions)
	assert.Equal(t, []string{"🦴", "111222"}, cfg.BoneReactions)
}

func TestLoad_BlankOverrideFallsBack(t *testing.T) {
	t.Setenv(EnvFunny, " , ,")

	cfg := Load()

	assert.Equal(t, []string{"😂", "🤣", "😹", "💀", "😆"}, cfg.FunnyReactions)
}

func TestChannelID(t *testing.T) {
	t.Setenv(EnvChannelID, "  123456789  ")
	assert.Equal(t, "123456789", ChannelID())

	t.Setenv(EnvChannelID, "")
	assert.Empty(t, ChannelID())
}
