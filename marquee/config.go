package marquee

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ScreenWidth  float64 `yaml:"screenWidth"`
	ScreenHeight float64 `yaml:"screenHeight"`
	Fullscreen   bool    `yaml:"fullscreen"`
	Music        bool    `yaml:"music"`
	SkipHint     bool    `yaml:"skipHint"`
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1024.0,
		ScreenHeight: 768.0,
		Fullscreen:   false,
		Music:        true,
		SkipHint:     true,
	}
}

// ReadConfig loads the window and audio settings. A missing or unreadable
// file just means defaults; a present but malformed file is reported and
// also falls back, since a promo window should come up regardless.
func ReadConfig(path string) Config {
	config := DefaultConfig()

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return config
	}

	err = yaml.Unmarshal(data, &config)
	if err != nil {
		fmt.Printf("[Boot] error loading config: %v\n", err)
		return DefaultConfig()
	}

	if config.ScreenWidth <= 0 || config.ScreenHeight <= 0 {
		fmt.Printf("[Boot] ignoring non-positive window size in %s\n", path)
		config.ScreenWidth = DefaultConfig().ScreenWidth
		config.ScreenHeight = DefaultConfig().ScreenHeight
	}

	return config
}
