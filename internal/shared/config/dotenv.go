package config

import (
	"errors"
	"io/fs"
	"log"

	"github.com/subosito/gotenv"
)

// loadEnvFiles applies KEY=VALUE pairs from each file that exists. Later
// files win, and file values override the process environment.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if err := gotenv.OverLoad(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: skipping %s: %v", path, err)
		}
	}
}
