package session

import (
	"os"

	"github.com/mitchellh/go-homedir"
)

const defaultBasePath = "~/.datestamp.d"

// Config locates the session store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the session directory from DATESTAMP_SESSION or the
// default under the home directory.
func LoadConfig() (Config, error) {
	path := defaultBasePath
	if override := os.Getenv("DATESTAMP_SESSION"); override != "" {
		path = override
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	return &dirConfig{Path: expanded}, nil
}

// Dir is a Config for an explicit directory.
func Dir(path string) Config {
	return &dirConfig{Path: path}
}

type dirConfig struct {
	Path string `json:"path"`
}

func (f *dirConfig) BasePath() string {
	return f.Path
}
