// Command wordle-assist suggests Wordle guesses from the feedback you enter.
//
// Usage:
//
//	wordle-assist [flags] [play]        interactive assistant (default)
//	wordle-assist [flags] serve         HTTP session API
//	wordle-assist [flags] solve -target WORD
//	wordle-assist [flags] bench -n N
//	wordle-assist hash-key KEY          print a bcrypt hash for API_KEY_HASH
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-assist/internal/config"
	"github.com/robalobadob/wordle-assist/internal/console"
	"github.com/robalobadob/wordle-assist/internal/httpserver"
	"github.com/robalobadob/wordle-assist/internal/store"
)

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", getEnv("CONFIG_FILE", "config.yaml"), "optional YAML config file")
	noColor := flag.Bool("no-color", false, "disable coloured tiles")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	cmd, args := "play", []string{}
	if flag.NArg() > 0 {
		cmd, args = flag.Arg(0), flag.Args()[1:]
	}
	setLogLevel(cfg.LogLevel, cmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, cmd, args, !*noColor); err != nil {
		log.Fatal().Err(err).Str("cmd", cmd).Msg("exited")
	}
}

// setLogLevel applies LOG_LEVEL. The interactive loop stays quiet at the
// default level so log lines do not interleave with prompts.
func setLogLevel(level, cmd string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if cmd == "play" && os.Getenv("LOG_LEVEL") == "" && lvl < zerolog.WarnLevel {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func run(ctx context.Context, cfg *config.Config, cmd string, args []string, colour bool) error {
	if cmd == "hash-key" {
		if len(args) != 1 {
			return errors.New("usage: hash-key KEY")
		}
		h, err := httpserver.HashAPIKey(args[0])
		if err != nil {
			return err
		}
		fmt.Println(h)
		return nil
	}

	a, err := newApp(ctx, cfg, log.Logger)
	if err != nil {
		return err
	}
	defer a.Close()

	switch cmd {
	case "play":
		c := console.New(os.Stdin, os.Stdout, a.newSession,
			console.WithColor(colour && isatty.IsTerminal(os.Stdout.Fd())))
		err := c.Run(ctx)
		if errors.Is(err, console.ErrQuit) {
			fmt.Println("Quitting")
			return nil
		}
		return err

	case "serve":
		srv := httpserver.New(store.NewMemoryStore(), a.newSession, httpserver.Options{
			JWTSecret:    cfg.Server.JWTSecret,
			TokenTTL:     cfg.Server.TokenTTL,
			APIKeyHash:   cfg.Server.APIKeyHash,
			ClientOrigin: cfg.Server.ClientOrigin,
		})
		log.Info().Str("port", cfg.Server.Port).Msg("starting wordle-assist")
		return srv.Start(":" + cfg.Server.Port)

	case "solve":
		fs := flag.NewFlagSet("solve", flag.ExitOnError)
		target := fs.String("target", "", "answer to play against")
		_ = fs.Parse(args)
		res, err := solveOne(a, *target)
		if err != nil {
			return err
		}
		for i, g := range res.Guesses {
			fmt.Printf("%d. %s\n", i+1, g)
		}
		if res.Solved {
			fmt.Printf("Win in %d guesses!\n", len(res.Guesses))
		} else {
			fmt.Println("Loss :(")
		}
		return nil

	case "bench":
		fs := flag.NewFlagSet("bench", flag.ExitOnError)
		n := fs.Int("n", a.dict.Len(), "number of dictionary words to play")
		_ = fs.Parse(args)
		st, err := runBench(ctx, a, *n, os.Stderr)
		if err != nil {
			return err
		}
		fmt.Print("\n", st)
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
