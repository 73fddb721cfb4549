// Package model contains data structures for resolved launch parameters and run results
package model

// EnvIgnoreCase - переменная окружения, наличие которой включает поиск без учета регистра
const EnvIgnoreCase = "IGNORE_CASE"

// Config - итоговые параметры запуска, после Build не изменяются
type Config struct {
	Query      string // подстрока для поиска, токен обязателен, но может быть пустым
	FilePath   string // путь к файлу, проверяется только при чтении
	IgnoreCase bool   // i — игнорировать регистр
}

// CaseOverride - явное решение о регистре из 4-го аргумента
type CaseOverride int

const (
	OverrideNone        CaseOverride = iota // решение берется из окружения
	OverrideInsensitive                     // 't...' - игнорировать регистр
	OverrideSensitive                       // 'f...' - учитывать регистр
)

func (o CaseOverride) String() string {
	switch o {
	case OverrideInsensitive:
		return "insensitive"
	case OverrideSensitive:
		return "sensitive"
	default:
		return "none"
	}
}

// Resolve returns the final ignore-case value; an explicit override always wins over envSet.
func (o CaseOverride) Resolve(envSet bool) bool {
	switch o {
	case OverrideInsensitive:
		return true
	case OverrideSensitive:
		return false
	default:
		return envSet
	}
}

// RunResult - результат одного запуска поиска
type RunResult struct {
	RunID    string   `json:"run_id"`
	HashSumm uint64   `json:"hash"`
	Lines    []string `json:"output"`
}
