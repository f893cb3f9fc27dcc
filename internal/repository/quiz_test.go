package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/mzums/keysnap/internal/models"
	mock_repository "github.com/mzums/keysnap/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *QuizR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &QuizR{db: db}
}

func passThroughRebind(mqi *mock_repository.MockQueryI) {
	mqi.EXPECT().Rebind(gomock.Any()).DoAndReturn(func(query string) string { return query }).AnyTimes()
}

func TestQuizR_AddQuizResult(t *testing.T) {
	t.Parallel()

	card := models.QuizCard{
		Shortcut:    "Ctrl+C",
		Description: "Copy",
		Category:    "General",
		Difficulty:  "easy",
		IsCorrect:   true,
	}

	type args struct {
		ctx    context.Context
		result models.QuizCard
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				ctx:    context.Background(),
				result: card,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				passThroughRebind(mqi)
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "Ctrl+C", "Copy", "General", "easy", true).Return(nil, nil)
			},
			wantErr: false,
		},
		{
			name: "failed exec",
			args: args{
				ctx:    context.Background(),
				result: card,
			},
			f: func(mqi *mock_repository.MockQueryI) {
				passThroughRebind(mqi)
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			err := quizR.AddQuizResult(tt.args.ctx, tt.args.result)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestQuizR_QuizStats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.QuizStats
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						stats := dest.(*models.QuizStats)
						stats.TotalCount = 7
						stats.RightCount = 5
						return nil
					})
			},
			want: models.QuizStats{
				TotalCount: 7,
				RightCount: 5,
				WrongCount: 2,
			},
			wantErr: false,
		},
		{
			name: "empty history",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			want:    models.QuizStats{},
			wantErr: false,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			want:    models.QuizStats{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizR := newQuizMock(t, ctrl, tt.f)

			got, err := quizR.QuizStats(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
