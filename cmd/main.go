package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/kodekulture/evil-hangman/game"
	"github.com/kodekulture/evil-hangman/handler"
	"github.com/kodekulture/evil-hangman/internal/config"
	"github.com/kodekulture/evil-hangman/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: stderr})

	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "\n%v\n%s\n", err, config.Usage)
		return 2
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		zlog.Warn().Err(err).Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := handler.NewConsole(stdin, stdout, service.New(cfg))
	err = console.Run(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, game.ErrEmptyDictionary), errors.Is(err, game.ErrIOFailure):
		fmt.Fprintln(stdout, "Empty Dictionary or some sort of I/O exception has occurred.")
		return 1
	case errors.Is(err, context.Canceled), errors.Is(err, io.ErrUnexpectedEOF):
		zlog.Info().Msg("game abandoned")
		return 1
	default:
		zlog.Err(err).Msg("game failed")
		return 1
	}
}
