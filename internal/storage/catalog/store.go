// Package catalog owns the shortcut catalog and its binary file.
//
// Every mutation is written through to disk before it returns. If the write
// fails the in-memory change is kept and the error wraps models.ErrIO.
package catalog

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/mzums/keysnap/internal/models"
	"github.com/mzums/keysnap/pkg/validator"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const DefaultPath = "shortcuts.bin"

type Store struct {
	mu         sync.Mutex
	fs         afero.Fs
	path       string
	log        *zap.Logger
	categories []string
	records    []models.ShortcutRecord
	version    uint64
}

// New returns an empty store bound to path. Nothing is read until Load.
func New(fsys afero.Fs, path string, log *zap.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{
		fs:   fsys,
		path: path,
		log:  log,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load replaces the catalog with the file content. A missing file yields an
// empty catalog and found == false. On any other failure the current catalog
// is left untouched.
func (s *Store) Load() (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.categories = nil
			s.records = nil
			s.version++
			s.log.Debug("catalog file not found, starting empty", zap.String("path", s.path))
			return false, nil
		}
		return false, fmt.Errorf("%w: read %s: %v", models.ErrIO, s.path, err)
	}

	snap, err := decode(bytes.NewReader(data))
	if err != nil {
		s.log.Error("failed to decode catalog", zap.String("path", s.path), zap.Error(err))
		return true, fmt.Errorf("load %s: %w", s.path, err)
	}

	s.categories = snap.categories
	s.records = snap.records
	s.version++

	s.log.Debug("catalog loaded",
		zap.String("path", s.path),
		zap.Int("categories", len(s.categories)),
		zap.Int("records", len(s.records)),
	)
	return true, nil
}

// Save rewrites the whole file.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return s.ioFailure("create directory", err)
	}

	f, err := afero.TempFile(s.fs, dir, filepath.Base(s.path)+".tmp")
	if err != nil {
		return s.ioFailure("create temporary file", err)
	}
	tmp := f.Name()

	bw := bufio.NewWriter(f)
	if err := encode(bw, s.categories, s.records); err != nil {
		f.Close()
		s.fs.Remove(tmp)
		return s.ioFailure("write", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		s.fs.Remove(tmp)
		return s.ioFailure("flush", err)
	}
	if err := f.Close(); err != nil {
		s.fs.Remove(tmp)
		return s.ioFailure("close", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		s.fs.Remove(tmp)
		return s.ioFailure("rename", err)
	}

	s.log.Debug("catalog saved",
		zap.String("path", s.path),
		zap.Int("categories", len(s.categories)),
		zap.Int("records", len(s.records)),
	)
	return nil
}

func (s *Store) ioFailure(op string, err error) error {
	s.log.Error("failed to save catalog", zap.String("path", s.path), zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %s %s: %v", models.ErrIO, op, s.path, err)
}

// Add appends a record and persists the catalog. The returned position is
// valid even when the error wraps models.ErrIO.
func (s *Store) Add(shortcut, description, category string) (int, error) {
	if err := validateInput(shortcut, description, category); err != nil {
		return -1, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.categoryIndex(category)
	if !ok {
		s.categories = append(s.categories, category)
		idx = uint32(len(s.categories) - 1)
	}

	s.records = append(s.records, models.ShortcutRecord{
		Shortcut:      shortcut,
		Description:   description,
		CategoryIndex: idx,
	})
	s.version++
	pos := len(s.records) - 1

	if err := s.save(); err != nil {
		return pos, err
	}
	return pos, nil
}

func validateInput(shortcut, description, category string) error {
	var result *multierror.Error

	for _, err := range validator.FieldErrors(models.ShortcutInput{
		Shortcut:    shortcut,
		Description: description,
		Category:    category,
	}) {
		result = multierror.Append(result, err)
	}

	fields := []struct {
		name  string
		value string
	}{
		{"Shortcut", shortcut},
		{"Description", description},
		{"Category", category},
	}
	for _, f := range fields {
		if len(f.value) > models.MaxFieldLen {
			result = multierror.Append(result,
				fmt.Errorf("field %s: %d bytes exceeds %d", f.name, len(f.value), models.MaxFieldLen))
		}
		if !utf8.ValidString(f.value) {
			result = multierror.Append(result, fmt.Errorf("field %s: not valid utf-8", f.name))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}
	return nil
}

// List returns records in insertion order. An empty category means no filter.
func (s *Store) List(category string) []models.Shortcut {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Shortcut, 0, len(s.records))
	for _, rec := range s.records {
		name := s.categories[rec.CategoryIndex]
		if category != "" && name != category {
			continue
		}
		out = append(out, models.Shortcut{
			Shortcut:    rec.Shortcut,
			Description: rec.Description,
			Category:    name,
		})
	}
	return out
}

func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) Records() []models.ShortcutRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ShortcutRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Version changes whenever the catalog content may have changed.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Delete removes the earliest record matching the triple exactly. The
// category stays in the table even if no record references it anymore.
func (s *Store) Delete(shortcut, description, category string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.categoryIndex(category)
	if !ok {
		return false, nil
	}

	for i, rec := range s.records {
		if rec.CategoryIndex != idx || rec.Shortcut != shortcut || rec.Description != description {
			continue
		}
		s.records = append(s.records[:i], s.records[i+1:]...)
		s.version++
		return true, s.save()
	}

	return false, nil
}

func (s *Store) categoryIndex(category string) (uint32, bool) {
	for i, name := range s.categories {
		if name == category {
			return uint32(i), true
		}
	}
	return 0, false
}
