// Package config holds viper helpers shared by the CLI.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/s2wiki/pagetools/pkg/errors"
	"github.com/s2wiki/pagetools/pkg/sources"
)

// GamesKey is the configuration key holding a replacement game list.
const GamesKey = "games"

// GetString returns key from viper, falling back to the raw environment
// variable of the same name.
func GetString(v *viper.Viper, key string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	return os.Getenv(key)
}

// LoadGames reads the configured game list. It returns nil when none is
// configured.
func LoadGames(v *viper.Viper) ([]sources.Game, error) {
	if !v.IsSet(GamesKey) {
		return nil, nil
	}
	var games []sources.Game
	if err := v.UnmarshalKey(GamesKey, &games); err != nil {
		return nil, errors.NewConfigError(GamesKey, "cannot decode game list", err)
	}
	return games, nil
}

// Registry builds the registry from games, or returns the built-in games
// when games is empty.
func Registry(games []sources.Game) (*sources.Registry, error) {
	if len(games) == 0 {
		return sources.Default(), nil
	}
	reg, err := sources.NewRegistry(games...)
	if err != nil {
		return nil, errors.NewConfigError(GamesKey, "invalid game list", err)
	}
	return reg, nil
}
