package jsonfile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/example/bg3planner/internal/core/character"
	"github.com/example/bg3planner/internal/ports/secondary"
)

// CharactersFile is the store's file name inside the data directory.
const CharactersFile = "characters.json"

// CharacterRepository implements secondary.CharacterRepository over a
// JSON-lines file: one character object per line. Every mutation rewrites
// the whole file atomically.
type CharacterRepository struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewCharacterRepository creates a repository for <dataDir>/characters.json.
func NewCharacterRepository(dataDir string, logger *zap.Logger) *CharacterRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CharacterRepository{
		path:   filepath.Join(dataDir, CharactersFile),
		logger: logger.With(zap.String("module", "character_repo")),
	}
}

// Path returns the backing file path.
func (r *CharacterRepository) Path() string {
	return r.path
}

// LoadAll returns every stored character in file order.
func (r *CharacterRepository) LoadAll(ctx context.Context) ([]character.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Append validates and stores a new character, returning its position.
func (r *CharacterRepository) Append(ctx context.Context, rec character.Record) (int, error) {
	if err := character.Validate(rec); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return 0, err
	}
	records = append(records, rec)
	if err := r.save(records); err != nil {
		return 0, err
	}

	r.logger.Info("character appended", zap.String("name", rec.Name), zap.Int("index", len(records)-1))
	return len(records) - 1, nil
}

// UpdateAt validates and replaces the character at index.
func (r *CharacterRepository) UpdateAt(ctx context.Context, index int, rec character.Record) error {
	if err := character.Validate(rec); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}
	if err := character.CheckIndex(index, len(records)); err != nil {
		return err
	}
	records[index] = rec
	if err := r.save(records); err != nil {
		return err
	}

	r.logger.Info("character updated", zap.String("name", rec.Name), zap.Int("index", index))
	return nil
}

// DeleteAt removes the character at index and returns it.
func (r *CharacterRepository) DeleteAt(ctx context.Context, index int) (character.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return character.Record{}, err
	}
	if err := character.CheckIndex(index, len(records)); err != nil {
		return character.Record{}, err
	}
	removed := records[index]
	records = append(records[:index], records[index+1:]...)
	if err := r.save(records); err != nil {
		return character.Record{}, err
	}

	r.logger.Info("character deleted", zap.String("name", removed.Name), zap.Int("index", index))
	return removed, nil
}

func (r *CharacterRepository) load() ([]character.Record, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []character.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", CharactersFile, err)
	}
	defer f.Close()

	records, err := decodeLines(f)
	if err != nil {
		r.logger.Error("character store unreadable", zap.String("path", r.path), zap.Error(err))
		return nil, err
	}
	return records, nil
}

func (r *CharacterRepository) save(records []character.Record) error {
	return writeFileAtomic(r.path, 0644, func(w io.Writer) error {
		return encodeLines(w, records)
	})
}

// decodeLines parses one complete record per non-blank line.
func decodeLines(rd io.Reader) ([]character.Record, error) {
	records := []character.Record{}
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec *character.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", character.ErrStoreUnavailable, CharactersFile, lineNo, err)
		}
		if rec == nil {
			return nil, fmt.Errorf("%w: %s line %d: not a character object", character.ErrStoreUnavailable, CharactersFile, lineNo)
		}
		// Incomplete records would be written back on the next rewrite.
		if err := character.Validate(*rec); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: incomplete record: %v", character.ErrStoreUnavailable, CharactersFile, lineNo, err)
		}
		records = append(records, *rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", character.ErrStoreUnavailable, err)
	}
	return records, nil
}

// encodeLines writes each record as compact JSON followed by a newline.
func encodeLines(w io.Writer, records []character.Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal character %q: %w", rec.Name, err)
		}
		bw.Write(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s: %w", CharactersFile, err)
	}
	return nil
}

// Ensure CharacterRepository implements the interface
var _ secondary.CharacterRepository = (*CharacterRepository)(nil)
