package repository

import (
	"context"
	"testing"

	"e-disposisi/internal/errs"
	"e-disposisi/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFeedbackRepository_CreateConflict(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `disposisi` SET .*").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := NewFeedbackRepository(openDB(t, mockDB))
	f := &model.Feedback{DisposisiID: 5, Tier: model.TierKabid, PenulisID: 2, Catatan: "x", Status: model.StatusDiproses}
	err = repo.Create(context.Background(), f, activeDisposisi())
	assert.True(t, errs.Is(err, errs.StateConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepository_Update(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `disposisi` SET .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `feedbacks` SET .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// soft delete
	mock.ExpectExec("UPDATE `lampirans` SET `deleted_at`.*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `lampirans` .*").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO `feedback_revisis` .*").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewFeedbackRepository(openDB(t, mockDB))
	baru := []model.Lampiran{{Key: "feedback/a.pdf"}}
	err = repo.Update(context.Background(), FeedbackEdit{
		Feedback:  &model.Feedback{Model: gorm.Model{ID: 8}, Catatan: "revisi", Status: model.StatusDiproses},
		Disposisi: activeDisposisi(),
		Hapus:     []uint{3},
		Baru:      baru,
		Revisi:    model.FeedbackRevisi{CatatanLama: "awal"},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(8), baru[0].PemilikID)
	assert.Equal(t, model.PemilikFeedback, baru[0].PemilikType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
