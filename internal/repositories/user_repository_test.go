package repositories

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pulse/internal/models/db_models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&db_models.User{}, &db_models.Feedback{}))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestUserRepository_FindMissingReturnsNil(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user, err := repo.FindByID(ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_InsertAndLookup(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &db_models.User{
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "digest",
		Role:           db_models.RoleUser,
		IsActive:       true,
	}
	require.NoError(t, repo.Insert(ctx, user))
	require.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	dup := &db_models.User{
		Username:       "alice",
		Email:          "second@example.com",
		HashedPassword: "digest",
		Role:           db_models.RoleUser,
		IsActive:       true,
	}
	err = repo.Insert(ctx, dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestFeedbackRepository_OrderAndSummary(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	feedback := NewFeedbackRepository(db)
	ctx := context.Background()

	user := &db_models.User{
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "digest",
		Role:           db_models.RoleUser,
		IsActive:       true,
	}
	require.NoError(t, users.Insert(ctx, user))

	total, average, err := feedback.Summary(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Zero(t, average)

	comment := "fine"
	for _, rating := range []int{5, 4, 3} {
		require.NoError(t, feedback.CreateFeedback(ctx, &db_models.Feedback{
			UserID:  user.ID,
			Rating:  rating,
			Comment: &comment,
		}))
	}

	rows, err := feedback.ListFeedback(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// Oldest first, id as tiebreak within the same timestamp.
	assert.Equal(t, []int{5, 4, 3}, []int{rows[0].Rating, rows[1].Rating, rows[2].Rating})
	for _, row := range rows {
		assert.Equal(t, "alice", row.Username)
	}

	total, average, err = feedback.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.InDelta(t, 4.0, average, 1e-9)
}
