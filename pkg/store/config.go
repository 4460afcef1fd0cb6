package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the on-disk location of the note store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .coursedeck config file or the
// COURSEDECK environment, defaulting to ~/.coursedeck.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.coursedeck.db")
	viper.SetConfigName(".coursedeck") // .yaml is implicit
	viper.SetEnvPrefix("COURSEDECK")
	viper.AutomaticEnv()

	if override := os.Getenv("COURSEDECK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
