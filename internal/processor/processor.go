// Package processor runs one search: reads the input file, filters its lines and writes the result
package processor

import (
	"bufio"
	"fmt"
	"io"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/cespare/xxhash/v2"
	"github.com/docker/distribution/uuid"
	"go.uber.org/zap"
)

type Processor struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{log: log}
}

// Run searches cfg.FilePath for cfg.Query and writes each matching line to out.
// Read failures are returned as *reader.FileReadError before anything is written.
func (p *Processor) Run(cfg model.Config, out io.Writer) (*model.RunResult, error) {
	result := model.RunResult{
		RunID: uuid.Generate().String(),
	}
	log := p.log.With(zap.String("run_id", result.RunID))

	contents, err := reader.ReadFile(cfg.FilePath)
	if err != nil {
		log.Debug("run failed", zap.String("stage", "read"), zap.String("file", cfg.FilePath), zap.Error(err))
		return nil, err
	}

	result.Lines = Search(cfg, contents)
	result.HashSumm = hasher(result.Lines)

	log.Debug("search finished",
		zap.String("file", cfg.FilePath),
		zap.Bool("ignore_case", cfg.IgnoreCase),
		zap.Int("matches", len(result.Lines)),
		zap.Uint64("hash", result.HashSumm),
	)

	if err := writeLines(out, result.Lines); err != nil {
		log.Debug("run failed", zap.String("stage", "write"), zap.Error(err))
		return nil, err
	}

	return &result, nil
}

// Search dispatches to the matcher by cfg.IgnoreCase.
func Search(cfg model.Config, contents string) []string {
	if cfg.IgnoreCase { //-i
		return matcher.SearchCaseInsensitive(cfg.Query, contents)
	}
	return matcher.Search(cfg.Query, contents)
}

func writeLines(out io.Writer, lines []string) error {
	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// hasher считает общий хеш по выведенным строкам, разделитель учитывается
func hasher(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
