//go:build integration

package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"dormportal/internal/domain"
)

func createShiftFixture(t *testing.T, db *sql.DB) (*domain.WorkShift, func()) {
	t.Helper()
	ctx := context.Background()

	users := NewPostgresUsersRepository(db)
	user := &domain.User{
		ID:             uuid.NewString(),
		Email:          uuid.NewString() + "@dorm.example",
		PasswordDigest: "0000000000000000000000000000000000000000000000000000000000000000",
		Name:           "Shift User",
		Role:           "member",
		Positions:      []string{},
	}
	require.NoError(t, users.Create(ctx, user))

	shifts := NewPostgresWorkShiftsRepository(db)
	shift := &domain.WorkShift{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		UserName:       user.Name,
		Days:           3,
		AssignedBy:     user.ID,
		AssignedByName: user.Name,
		Reason:         "missed duty",
		AssignedAt:     time.Now().UTC(),
	}
	require.NoError(t, shifts.Create(ctx, shift))

	cleanup := func() {
		db.Exec(`DELETE FROM archived_work_shifts WHERE id = $1`, shift.ID)
		db.Exec(`DELETE FROM work_shifts WHERE id = $1`, shift.ID)
		cleanupTestUser(db, user.ID)
	}
	return shift, cleanup
}

func TestPostgresWorkShiftsRepository_Archive(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	shift, cleanup := createShiftFixture(t, db)
	defer cleanup()

	repo := NewPostgresWorkShiftsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Archive(ctx, shift.ID))

	// Exactly one store holds the shift after the move.
	var active bool
	require.NoError(t, db.QueryRow(
		`SELECT is_archived FROM work_shifts WHERE id = $1`, shift.ID).Scan(&active))
	require.True(t, active)

	var archivedCount int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM archived_work_shifts WHERE id = $1`, shift.ID).Scan(&archivedCount))
	require.Equal(t, 1, archivedCount)

	require.ErrorIs(t, repo.Archive(ctx, shift.ID), domain.ErrConflict)
}

// A failure between the archive copy and the flag update must roll the whole
// move back: the shift stays active and no copy lands in the archive.
func TestPostgresWorkShiftsRepository_ArchiveRollback(t *testing.T) {
	db := getTestDB(t)
	if db == nil {
		return
	}
	defer db.Close()

	shift, cleanup := createShiftFixture(t, db)
	defer cleanup()

	// Trigger that rejects the flag update, firing after the INSERT into
	// archived_work_shifts has already succeeded inside the transaction.
	_, err := db.Exec(`
		CREATE OR REPLACE FUNCTION dormtest_block_archive_flag() RETURNS trigger AS $$
		BEGIN
			IF NEW.is_archived AND NOT OLD.is_archived THEN
				RAISE EXCEPTION 'archive flag rejected';
			END IF;
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`)
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TRIGGER dormtest_block_archive_flag BEFORE UPDATE ON work_shifts
		FOR EACH ROW EXECUTE FUNCTION dormtest_block_archive_flag()`)
	require.NoError(t, err)
	defer func() {
		db.Exec(`DROP TRIGGER IF EXISTS dormtest_block_archive_flag ON work_shifts`)
		db.Exec(`DROP FUNCTION IF EXISTS dormtest_block_archive_flag()`)
	}()

	repo := NewPostgresWorkShiftsRepository(db)
	ctx := context.Background()

	require.Error(t, repo.Archive(ctx, shift.ID))

	// Still active, and the already-inserted archive copy was rolled back
	// with the transaction.
	var active bool
	require.NoError(t, db.QueryRow(
		`SELECT is_archived FROM work_shifts WHERE id = $1`, shift.ID).Scan(&active))
	require.False(t, active)

	var archivedCount int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM archived_work_shifts WHERE id = $1`, shift.ID).Scan(&archivedCount))
	require.Equal(t, 0, archivedCount)

	shifts, err := repo.List(ctx, shift.UserID)
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	require.Equal(t, shift.ID, shifts[0].ID)
}
