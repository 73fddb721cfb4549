// Package parser puts os.Args and the environment into a Config structure and validates it
package parser

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/UnendingLoop/minigrep/internal/model"
)

var (
	ErrMissingQuery    = errors.New("query not specified")
	ErrMissingFilePath = errors.New("file path not specified")
)

// Usage is printed together with argument errors.
const Usage = "Usage: minigrep <query> <file_path> [t|f]"

// LookupEnv has the signature of os.LookupEnv so the environment can be injected.
type LookupEnv func(key string) (string, bool)

// Build resolves a Config from raw invocation tokens, args[0] being the program name.
// It performs no I/O: IGNORE_CASE is read only through lookupEnv, nil meaning an empty environment.
func Build(args []string, lookupEnv LookupEnv) (model.Config, error) {
	// разбираемся с позиционными аргументами
	switch {
	case len(args) < 2:
		return model.Config{}, ErrMissingQuery
	case len(args) < 3:
		return model.Config{}, ErrMissingFilePath
	}

	override := model.OverrideNone
	if len(args) > 3 {
		override = ParseOverride(args[3])
	}

	return model.Config{
		Query:      args[1],
		FilePath:   args[2],
		IgnoreCase: override.Resolve(envIsSet(lookupEnv, model.EnvIgnoreCase)),
	}, nil
}

// ParseOverride decides by the first character of token, case-insensitively:
// 't' forces case-insensitive search, 'f' forces case-sensitive, anything else defers to the environment.
func ParseOverride(token string) model.CaseOverride {
	if token == "" {
		return model.OverrideNone
	}

	r, _ := utf8.DecodeRuneInString(token)
	switch unicode.ToLower(r) {
	case 't':
		return model.OverrideInsensitive
	case 'f':
		return model.OverrideSensitive
	default:
		return model.OverrideNone
	}
}

func envIsSet(lookupEnv LookupEnv, key string) bool {
	if lookupEnv == nil {
		return false
	}
	// значение не важно - учитывается только наличие переменной
	_, ok := lookupEnv(key)
	return ok
}
