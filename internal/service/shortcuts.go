package service

import (
	"errors"
	"strings"

	"github.com/mzums/keysnap/internal/models"
	"go.uber.org/zap"
)

// DefaultShortcuts seed a catalog created on first run.
var DefaultShortcuts = []models.Shortcut{
	{Shortcut: "Ctrl+C", Description: "Copy", Category: "General"},
	{Shortcut: "Ctrl+V", Description: "Paste", Category: "General"},
}

type ShortcutS struct {
	catalog CatalogI
	log     *zap.Logger
}

func NewShortcutService(catalog CatalogI, log *zap.Logger) *ShortcutS {
	return &ShortcutS{
		catalog: catalog,
		log:     log,
	}
}

// AddShortcut trims the fields and stores a new shortcut. On a persistence
// failure the shortcut is still in the catalog and the error wraps
// models.ErrIO.
func (s *ShortcutS) AddShortcut(shortcut, description, category string) (int, error) {
	shortcut = strings.TrimSpace(shortcut)
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)

	pos, err := s.catalog.Add(shortcut, description, category)
	if err != nil {
		if errors.Is(err, models.ErrIO) {
			s.log.Error("shortcut added but not saved", zap.String("shortcut", shortcut), zap.Error(err))
		} else {
			s.log.Warn("failed to add shortcut", zap.String("shortcut", shortcut), zap.Error(err))
		}
		return pos, err
	}

	s.log.Info("shortcut added",
		zap.String("shortcut", shortcut),
		zap.String("category", category),
		zap.Int("position", pos),
	)
	return pos, nil
}

func (s *ShortcutS) Shortcuts(category string) []models.Shortcut {
	return s.catalog.List(strings.TrimSpace(category))
}

func (s *ShortcutS) Categories() []string {
	return s.catalog.Categories()
}

func (s *ShortcutS) DeleteShortcut(shortcut, description, category string) (bool, error) {
	shortcut = strings.TrimSpace(shortcut)
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)

	removed, err := s.catalog.Delete(shortcut, description, category)
	if err != nil {
		s.log.Error("shortcut deleted but not saved", zap.String("shortcut", shortcut), zap.Error(err))
		return removed, err
	}
	if removed {
		s.log.Info("shortcut deleted", zap.String("shortcut", shortcut), zap.String("category", category))
	}
	return removed, nil
}

// SeedDefaults adds DefaultShortcuts to an empty catalog.
func (s *ShortcutS) SeedDefaults() error {
	if s.catalog.Len() > 0 {
		return nil
	}
	for _, sc := range DefaultShortcuts {
		if _, err := s.catalog.Add(sc.Shortcut, sc.Description, sc.Category); err != nil {
			return err
		}
	}
	s.log.Debug("seeded default shortcuts", zap.Int("count", len(DefaultShortcuts)))
	return nil
}
