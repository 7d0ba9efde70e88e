// discord-echo is a minimal bot that subscribes a reference caster host to the
// Discord platform adapter and echoes every command back to its sender.
//
// Usage:
//
//	DISCORD_TOKEN=xxx go run ./cmd/discord-echo
//
// A config.toml (see internal/config) can set the log level, the platform id
// and the command prefixes; DISCORD_TOKEN overrides the configured token.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/castery/caster-discord/internal/caster"
	"github.com/castery/caster-discord/internal/config"
	"github.com/castery/caster-discord/internal/discord"
	"github.com/castery/caster-discord/internal/logger"
	"github.com/castery/caster-discord/internal/version"
)

func provideConfig() (config.Config, error) {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if token := strings.TrimSpace(os.Getenv("DISCORD_TOKEN")); token != "" {
		cfg.Discord.Token = token
	}
	return cfg, nil
}

func provideLogger(cfg config.Config) *slog.Logger {
	return logger.Init(cfg.Log.Level, cfg.Log.Format)
}

func providePlatform(cfg config.Config, log *slog.Logger) (*discord.Platform, error) {
	opts := discord.Options{
		ID:      cfg.Discord.ID,
		Adapter: discord.AdapterOptions{Token: cfg.Discord.Token},
		Prefix:  cfg.Discord.Prefix,
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("discord options: %w", err)
	}
	return discord.NewPlatform(opts, log)
}

func provideHost(log *slog.Logger) *caster.Caster {
	return caster.New(log)
}

func run(lc fx.Lifecycle, platform *discord.Platform, host *caster.Caster, log *slog.Logger) {
	log.Info("starting discord-echo", slog.String("version", version.String()))

	host.OnIncoming(func(ctx context.Context, msg caster.Context) {
		text := msg.Text()
		if m, ok := msg.(*discord.MessageContext); ok {
			if stripped, ok := m.StrippedText(); ok {
				text = stripped
			}
		}
		if err := msg.Reply(ctx, text); err != nil {
			log.Error("reply failed", slog.Any("error", err))
		}
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return platform.Subscribe(ctx, host)
		},
		OnStop: func(ctx context.Context) error {
			return platform.Unsubscribe(ctx, host)
		},
	})
}

func main() {
	fx.New(
		fx.Provide(
			provideConfig,
			provideLogger,
			providePlatform,
			provideHost,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		fx.Invoke(run),
	).Run()
}
