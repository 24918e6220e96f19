package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/laplazadevs/memeoftheweekbot/internal/config"
	"github.com/laplazadevs/memeoftheweekbot/internal/domain"
	"github.com/laplazadevs/memeoftheweekbot/internal/infrastructure/discord"
	"github.com/laplazadevs/memeoftheweekbot/internal/logger"
	"github.com/laplazadevs/memeoftheweekbot/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.Token == "" {
		log.Fatal().Msgf("%s is not set", config.EnvToken)
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("create session")
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	categories := []service.Category{
		{Title: "😂 Meme de la semana", Set: domain.NewReactionSet(cfg.FunnyReactions...)},
		{Title: "🦴 Hueso de la semana", Set: domain.NewReactionSet(cfg.BoneReactions...)},
	}

	handler := discord.NewHandler(
		config.ChannelID,
		discord.NewChannelRepository(session),
		discord.NewMessageRepository(session),
		categories,
		log,
	)
	session.AddHandler(handler.Handle)
	session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		log.Info().Str("user", r.User.Username).Msg("session ready")
	})

	if err := session.Open(); err != nil {
		log.Fatal().Err(err).Msg("open session")
	}
	defer session.Close()

	cmd, err := session.ApplicationCommandCreate(session.State.User.ID, cfg.GuildID, discord.Command())
	if err != nil {
		log.Fatal().Err(err).Msg("register command")
	}
	log.Info().Str("command", cmd.Name).Msg("command registered, waiting for invocations")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	if err := session.ApplicationCommandDelete(session.State.User.ID, cfg.GuildID, cmd.ID); err != nil {
		log.Warn().Err(err).Msg("delete command")
	}
	log.Info().Msg("shutting down")
}
