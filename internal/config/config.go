// Package config loads the settings of a game from the command line, the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyDictionary = "dictionary"
	keyLength     = "length"
	keyGuesses    = "guesses"
	keyLogLevel   = "log-level"
)

// Usage is printed when the program is started with bad arguments.
const Usage = "Usage: evilhangman [flags] [dictionary wordLength guesses]"

// ErrUsage is returned when the arguments cannot be understood.
var ErrUsage = errors.New("invalid command-line arguments")

// Config holds everything needed to play one game.
type Config struct {
	// Dictionary is the path of the word list; empty means the bundled dictionary.
	Dictionary string
	WordLength int
	Guesses    int
	LogLevel   string
}

// Load builds a Config from args (without the program name).
//
// Values are taken, from highest to lowest priority, from the positional arguments
// `dictionary wordLength guesses`, flags, EVIL_* environment variables (a .env file in
// the working directory is loaded first if present) and defaults.
// LOG_LEVEL is also accepted for the log level.
func Load(args []string) (Config, error) {
	_ = godotenv.Load()

	fs := pflag.NewFlagSet("evilhangman", pflag.ContinueOnError)
	fs.StringP(keyDictionary, "d", "", "path of the dictionary file (bundled dictionary if empty)")
	fs.IntP(keyLength, "l", 5, "length of the word to guess")
	fs.IntP(keyGuesses, "g", 10, "number of wrong guesses allowed")
	fs.String(keyLogLevel, "info", "log level (trace, debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Join(ErrUsage, err)
	}

	v := viper.New()
	v.SetEnvPrefix("evil")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(keyLogLevel, "EVIL_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return Config{}, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	switch pos := fs.Args(); len(pos) {
	case 0:
	case 3:
		v.Set(keyDictionary, pos[0])
		v.Set(keyLength, pos[1])
		v.Set(keyGuesses, pos[2])
	default:
		return Config{}, fmt.Errorf("%w: expected 3 positional arguments, got %d", ErrUsage, len(pos))
	}

	length, err := toInt(v, keyLength)
	if err != nil {
		return Config{}, err
	}
	guesses, err := toInt(v, keyGuesses)
	if err != nil {
		return Config{}, err
	}
	c := Config{
		Dictionary: v.GetString(keyDictionary),
		WordLength: length,
		Guesses:    guesses,
		LogLevel:   v.GetString(keyLogLevel),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings no game can be played with.
func (c Config) Validate() error {
	if c.WordLength < 2 {
		return fmt.Errorf("%w: word length must be at least 2, got %d", ErrUsage, c.WordLength)
	}
	if c.Guesses < 1 {
		return fmt.Errorf("%w: guesses must be at least 1, got %d", ErrUsage, c.Guesses)
	}
	return nil
}

// toInt reads key as an integer. Unlike viper.GetInt a malformed value is an error.
func toInt(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrUsage, key, raw)
	}
	return n, nil
}
