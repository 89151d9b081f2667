/*
© 2023–present Harald Rudell <harald.rudell@gmail.com> (https://haraldrudell.github.io/haraldrudell/)
ISC License
*/

// Package config loads default iterator flags from a repository-local
// ".gititer.yml", so a caller need not override Flags explicitly on every
// constructor call.
package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/arnekeller/gititer/perrors"
)

// Defaults seeds the Flags passed to ForNothing/ForTree/ForIndex/ForWorkdir
// when the caller does not override them.
type Defaults struct {
	IgnoreCase         *bool `yaml:"ignoreCase"`
	IncludeTrees       bool  `yaml:"includeTrees"`
	SuppressAutoExpand bool  `yaml:"suppressAutoExpand"`
}

// Load reads and parses path as YAML into a Defaults value. A missing file
// is not an error: Load returns the zero Defaults (IncludeTrees=false,
// SuppressAutoExpand=false, IgnoreCase inherited from the index).
func Load(path string) (d Defaults, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Defaults{}, nil
	}
	if err != nil {
		return Defaults{}, perrors.NewOSError(err, "config: read %s", path)
	}
	if err = yaml.Unmarshal(data, &d); err != nil {
		return Defaults{}, perrors.NewInvalid("config: parse %s: %s", path, err)
	}
	return d, nil
}
