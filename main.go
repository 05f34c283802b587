package main

import (
	"context"
	"os"
	"os/signal"
	"retouch/internal/adapters/file"
	"retouch/internal/adapters/generator"
	"retouch/internal/adapters/handler"
	"retouch/internal/adapters/render"
	"retouch/internal/core/domain/command"
	"retouch/internal/core/service"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting retouch...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")
	viper.SetDefault("gemini.model", "gemini-2.5-flash-image")
	viper.SetDefault("handler.timeout", "2m")
	viper.SetDefault("session.ttl", "30m")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("app.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.WarnLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	_ = viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	apiKey := viper.GetString("gemini.api_key")
	if apiKey == "" {
		log.Fatal().Msg("no API key, set gemini.api_key in config or the GEMINI_API_KEY environment variable")
	}

	editor, err := generator.NewGemini(ctx, apiKey, viper.GetString("gemini.model"))
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing gemini editor")
	}

	files := file.NewLocal()

	sessionTTL, err := time.ParseDuration(viper.GetString("session.ttl"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid ttl for sessions in config")
	}

	store := service.NewStore(editor, files, sessionTTL)

	id, session, err := store.Create()
	if err != nil {
		log.Panic().Err(err).Msg("failed creating editor session")
	}

	renderer := render.NewConsole(os.Stdout)

	registry := &command.Registry{}
	registry.Register(command.NewLoad(session, renderer, "/load"))
	registry.Register(command.NewPrompt(session, renderer, "/prompt"))
	registry.Register(command.NewGenerate(session, renderer, "/generate"))
	registry.Register(command.NewSave(session, files, renderer, "/save"))
	registry.Register(command.NewStatus(session, renderer, "/status"))
	registry.Register(command.NewReset(session, renderer, "/reset"))

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for handler in config")
	}

	repl := handler.NewREPL(registry, renderer, handlerTimeout)

	log.Info().Str("sessionId", id).Msg("editor session ready")

	if err := repl.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("terminal loop failed")
	}
}
