package service

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mzums/keysnap/internal/models"
	mock_service "github.com/mzums/keysnap/internal/service/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newShortcutServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockCatalogI)) *ShortcutS {
	catalog := mock_service.NewMockCatalogI(ctrl)
	if setupMock != nil {
		setupMock(catalog)
	}

	return NewShortcutService(catalog, zap.NewNop())
}

func TestShortcutS_AddShortcut(t *testing.T) {
	t.Parallel()

	type args struct {
		shortcut, description, category string
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_service.MockCatalogI)
		want    int
		wantErr error
	}{
		{
			name: "success: fields are trimmed",
			args: args{"  Ctrl+C ", "Copy\t", " General"},
			f: func(mc *mock_service.MockCatalogI) {
				mc.EXPECT().Add("Ctrl+C", "Copy", "General").Return(3, nil)
			},
			want: 3,
		},
		{
			name: "validation error is passed through",
			args: args{"", "Copy", "General"},
			f: func(mc *mock_service.MockCatalogI) {
				mc.EXPECT().Add("", "Copy", "General").Return(-1, fmt.Errorf("%w: empty shortcut", models.ErrValidation))
			},
			want:    -1,
			wantErr: models.ErrValidation,
		},
		{
			name: "io failure keeps the position",
			args: args{"Ctrl+V", "Paste", "General"},
			f: func(mc *mock_service.MockCatalogI) {
				mc.EXPECT().Add("Ctrl+V", "Paste", "General").Return(1, fmt.Errorf("%w: disk full", models.ErrIO))
			},
			want:    1,
			wantErr: models.ErrIO,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newShortcutServiceMock(t, ctrl, tt.f)

			got, err := s.AddShortcut(tt.args.shortcut, tt.args.description, tt.args.category)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestShortcutS_Shortcuts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := []models.Shortcut{{Shortcut: "Ctrl+C", Description: "Copy", Category: "General"}}
	s := newShortcutServiceMock(t, ctrl, func(mc *mock_service.MockCatalogI) {
		mc.EXPECT().List("General").Return(want)
		mc.EXPECT().Categories().Return([]string{"General"})
	})

	assert.Equal(t, want, s.Shortcuts(" General "))
	assert.Equal(t, []string{"General"}, s.Categories())
}

func TestShortcutS_DeleteShortcut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockCatalogI)
		want    bool
		wantErr error
	}{
		{
			name: "removed",
			f: func(mc *mock_service.MockCatalogI) {
				mc.EXPECT().Delete("Ctrl+C", "Copy", "General").Return(true, nil)
			},
			want: true,
		},
		{
			name: "not found",
			f: func(mc *mock_service.MockCatalogI) {
				mc.EXPECT().Delete("Ctrl+C", "Copy", "General").Return(false, nil)
			},
			want: false,
		},
		{
			name: "removed but not saved",
			f: func(mc *mock_service.MockCatalogI) {
				mc.EXPECT().Delete("Ctrl+C", "Copy", "General").Return(true, fmt.Errorf("%w: read-only", models.ErrIO))
			},
			want:    true,
			wantErr: models.ErrIO,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newShortcutServiceMock(t, ctrl, tt.f)

			got, err := s.DeleteShortcut(" Ctrl+C", "Copy ", "General")
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestShortcutS_SeedDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty catalog", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := newShortcutServiceMock(t, ctrl, func(mc *mock_service.MockCatalogI) {
			mc.EXPECT().Len().Return(0)
			gomock.InOrder(
				mc.EXPECT().Add("Ctrl+C", "Copy", "General").Return(0, nil),
				mc.EXPECT().Add("Ctrl+V", "Paste", "General").Return(1, nil),
			)
		})

		require.NoError(t, s.SeedDefaults())
	})

	t.Run("non-empty catalog is left alone", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := newShortcutServiceMock(t, ctrl, func(mc *mock_service.MockCatalogI) {
			mc.EXPECT().Len().Return(2)
		})

		require.NoError(t, s.SeedDefaults())
	})

	t.Run("save failure stops seeding", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := newShortcutServiceMock(t, ctrl, func(mc *mock_service.MockCatalogI) {
			mc.EXPECT().Len().Return(0)
			mc.EXPECT().Add("Ctrl+C", "Copy", "General").Return(0, models.ErrIO)
		})

		require.ErrorIs(t, s.SeedDefaults(), models.ErrIO)
	})
}
