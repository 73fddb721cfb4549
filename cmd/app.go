package main

import (
	"fmt"
	"os"

	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	log, err := logger.New(os.Getenv(logger.EnvLogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	// собираем параметры запуска из аргументов и окружения
	cfg, err := parser.Build(os.Args, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Problem parsing arguments: %v\n%s\n", err, parser.Usage)
		return 1
	}

	if _, err := processor.New(log).Run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		return 1
	}

	return 0
}
