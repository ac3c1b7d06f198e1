package config

import (
	"fmt"
	"os"
)

// Template returns the example config shipped with the project. It parses to
// exactly Default().
func Template() string {
	return starterTemplate
}

// WriteTemplate writes the example config to path. Refuses to overwrite
// unless asked.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(starterTemplate), 0o600)
}

const starterTemplate = `name = "gostarter"

[demo]
message = "Hello from gostarter"

[record]
name = "Enigma"
age = 1020

[log]
level = "info"
timestamp = true
no_color = false
`
