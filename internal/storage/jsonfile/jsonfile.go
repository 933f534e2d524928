// Package jsonfile provides a flat-file implementation of the
// storage.Storage interface: the whole talker collection lives in one
// JSON array on disk.
//
// HOW IT WORKS
// ────────────
// Every operation starts by reading and parsing the entire file
// (loadAll). Mutations change the in-memory slice and then overwrite the
// entire file (saveAll). Nothing is cached between calls, so the file is
// always the single source of truth: edit it by hand and the next
// request sees the change.
//
// There is no mutex here. Concurrent mutations follow the
// last-write-wins contract documented on storage.Storage.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/aanand-mishra/talker-api/internal/config"
	"github.com/aanand-mishra/talker-api/internal/storage"
	"github.com/aanand-mishra/talker-api/internal/types"
	"github.com/google/renameio/v2"
)

// filePerm is applied when saveAll creates or replaces the file.
const filePerm = 0o644

// JSONFile is the concrete implementation of storage.Storage.
type JSONFile struct {
	Path string
}

// New returns a *JSONFile reading and writing cfg.StoragePath.
//
// The file is not opened here: a missing or corrupt file is reported by
// the first operation that needs it, exactly like every later request.
func New(cfg *config.Config) (*JSONFile, error) {
	if cfg.StoragePath == "" {
		return nil, errors.New("jsonfile.New: storage path is empty")
	}
	return &JSONFile{Path: cfg.StoragePath}, nil
}

// loadAll reads and parses the whole collection.
// A file holding JSON null yields an empty (non-nil) slice.
func (s *JSONFile) loadAll(ctx context.Context) ([]types.Talker, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loadAll: %w", err)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("loadAll: read %s: %w", s.Path, err)
	}

	var talkers []types.Talker
	if err := json.Unmarshal(data, &talkers); err != nil {
		return nil, fmt.Errorf("loadAll: parse %s: %w", s.Path, err)
	}

	if talkers == nil {
		talkers = make([]types.Talker, 0)
	}
	return talkers, nil
}

// saveAll serialises the collection and replaces the file.
//
// renameio writes to a temporary file in the same directory, fsyncs it
// and renames it over the target, so readers never observe a half-written
// array. It is still a plain synchronous overwrite of the whole file.
func (s *JSONFile) saveAll(ctx context.Context, talkers []types.Talker) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("saveAll: %w", err)
	}

	if talkers == nil {
		talkers = make([]types.Talker, 0)
	}

	data, err := json.Marshal(talkers)
	if err != nil {
		return fmt.Errorf("saveAll: encode: %w", err)
	}

	if err := renameio.WriteFile(s.Path, data, filePerm); err != nil {
		return fmt.Errorf("saveAll: write %s: %w", s.Path, err)
	}
	return nil
}

// GetTalkers returns the whole collection in stored order.
func (s *JSONFile) GetTalkers(ctx context.Context) ([]types.Talker, error) {
	talkers, err := s.loadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetTalkers: %w", err)
	}
	return talkers, nil
}

// GetTalkerByID scans the collection for the first talker with the id.
func (s *JSONFile) GetTalkerByID(ctx context.Context, id int) (types.Talker, error) {
	talkers, err := s.loadAll(ctx)
	if err != nil {
		return types.Talker{}, fmt.Errorf("GetTalkerByID: %w", err)
	}

	for _, t := range talkers {
		if t.ID == id {
			return t, nil
		}
	}
	return types.Talker{}, fmt.Errorf("GetTalkerByID %d: %w", id, storage.ErrNotFound)
}

// CreateTalker assigns max(existing ids) + 1, appends and saves.
// The first talker of an empty collection gets id 1.
func (s *JSONFile) CreateTalker(ctx context.Context, in types.TalkerInput) (types.Talker, error) {
	talkers, err := s.loadAll(ctx)
	if err != nil {
		return types.Talker{}, fmt.Errorf("CreateTalker: %w", err)
	}

	created := fromInput(nextID(talkers), in)
	talkers = append(talkers, created)

	if err := s.saveAll(ctx, talkers); err != nil {
		return types.Talker{}, fmt.Errorf("CreateTalker: %w", err)
	}
	return created, nil
}

// ReplaceTalkerByID drops every talker with the id and appends the
// replacement at the end of the collection. When the id is unknown the
// talker is simply created with that id.
func (s *JSONFile) ReplaceTalkerByID(ctx context.Context, id int, in types.TalkerInput) (types.Talker, error) {
	talkers, err := s.loadAll(ctx)
	if err != nil {
		return types.Talker{}, fmt.Errorf("ReplaceTalkerByID: %w", err)
	}

	replacement := fromInput(id, in)
	talkers = append(withoutID(talkers, id), replacement)

	if err := s.saveAll(ctx, talkers); err != nil {
		return types.Talker{}, fmt.Errorf("ReplaceTalkerByID: %w", err)
	}
	return replacement, nil
}

// DeleteTalkerByID drops every talker with the id and saves. The file is
// rewritten even when nothing matched.
func (s *JSONFile) DeleteTalkerByID(ctx context.Context, id int) error {
	talkers, err := s.loadAll(ctx)
	if err != nil {
		return fmt.Errorf("DeleteTalkerByID: %w", err)
	}

	if err := s.saveAll(ctx, withoutID(talkers, id)); err != nil {
		return fmt.Errorf("DeleteTalkerByID: %w", err)
	}
	return nil
}

func nextID(talkers []types.Talker) int {
	maxID := 0
	for _, t := range talkers {
		maxID = max(maxID, t.ID)
	}
	return maxID + 1
}

func withoutID(talkers []types.Talker, id int) []types.Talker {
	return slices.DeleteFunc(talkers, func(t types.Talker) bool {
		return t.ID == id
	})
}

func fromInput(id int, in types.TalkerInput) types.Talker {
	return types.Talker{
		Name: in.Name,
		Age:  in.Age,
		ID:   id,
		Talk: in.Talk,
	}
}

// compile-time check that *JSONFile satisfies storage.Storage.
var _ storage.Storage = (*JSONFile)(nil)
