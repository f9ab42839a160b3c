package pgn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/holdem/internal/fileutil"
	"github.com/lox/holdem/internal/game"
)

// DefaultPrefix names files created when exporting into a directory.
const DefaultPrefix = "texas"

type exportConfig struct {
	clock  quartz.Clock
	handID uuid.UUID
}

// ExportOption configures Export.
type ExportOption func(*exportConfig)

// WithClock sets the clock used for the export timestamp comment.
func WithClock(c quartz.Clock) ExportOption {
	return func(cfg *exportConfig) { cfg.clock = c }
}

// WithHandID sets the id written in the header comment. A random id is
// generated otherwise.
func WithHandID(id uuid.UUID) ExportOption {
	return func(cfg *exportConfig) { cfg.handID = id }
}

// Export writes h to path and returns the file it wrote. If path is a
// directory the hand goes to the first free texas(n).pgn inside it. The
// file starts with a comment naming the hand and export time.
func Export(path string, h *game.History, opts ...ExportOption) (string, error) {
	cfg := exportConfig{clock: quartz.NewReal()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.handID == uuid.Nil {
		cfg.handID = uuid.New()
	}

	target, err := fileutil.ResolveExportPath(path, DefaultPrefix, FileExtension)
	if err != nil {
		return "", fmt.Errorf("pgn: export: %w", err)
	}

	err = fileutil.WriteAtomic(target, 0o644, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "# hand %s exported %s\n", cfg.handID, cfg.clock.Now().UTC().Format(time.RFC3339)); err != nil {
			return err
		}
		return Encode(w, h)
	})
	if err != nil {
		return "", fmt.Errorf("pgn: export: %w", err)
	}
	return target, nil
}

// Import reads a hand previously written by Export.
func Import(path string) (*game.History, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pgn: import: %w", err)
	}
	defer f.Close()

	h, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return h, nil
}
