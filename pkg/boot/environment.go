package boot

import (
	"os"
	"strings"

	"github.com/avila-r/failure"
)

type EnvironmentName string

const (
	Development EnvironmentName = "development"
	Production  EnvironmentName = "production"
)

func (name EnvironmentName) IsValid() bool {
	switch name {
	case Development, Production:
		return true
	default:
		return false
	}
}

// Environment is the resolved configuration of one bootstrap attempt.
// Properties come from process environment variables sharing a single
// prefix; the prefix is stripped from keys. Read-only after preparation.
type Environment struct {
	Name EnvironmentName

	prefix string
	values map[string]string
}

// EnvironmentFromEnv reads every environment variable starting with prefix
// (e.g. "IGNITION_") and validates the mandatory ENVIRONMENT property.
func EnvironmentFromEnv(prefix string) (*Environment, error) {
	env := &Environment{
		prefix: prefix,
		values: map[string]string{},
	}

	for _, entry := range os.Environ() {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		key, found = strings.CutPrefix(key, prefix)
		if !found {
			continue
		}
		env.values[key] = value
	}

	env.Name = EnvironmentName(env.Get("ENVIRONMENT"))
	if !env.Name.IsValid() {
		return nil, failure.Builder(ErrEnvironment).
			Message("invalid %sENVIRONMENT '%s'", prefix, env.Name).
			Build()
	}

	return env, nil
}

func (env Environment) Lookup(key string) (string, bool) {
	value, ok := env.values[key]
	return value, ok
}

func (env Environment) Get(key string) string {
	return env.values[key]
}

// Require returns the property value or an error naming the full variable,
// prefix included.
func (env Environment) Require(key string) (string, error) {
	value := env.values[key]
	if value == "" {
		return "", failure.Builder(ErrEnvironment).
			Message("empty or unset %s%s", env.prefix, key).
			Build()
	}
	return value, nil
}
