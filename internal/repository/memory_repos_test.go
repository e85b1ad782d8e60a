package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dormportal/internal/domain"
	"dormportal/internal/repository"
)

func TestMemoryAnnouncements_NewestFirst(t *testing.T) {
	repo := repository.NewMemoryAnnouncementsRepository()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &domain.Announcement{
			ID:        id,
			Title:     "T",
			Content:   "C",
			AuthorID:  "author",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "c", all[0].ID)
	require.Equal(t, "a", all[2].ID)
}

func TestMemoryLogs_LimitAndPurge(t *testing.T) {
	repo := repository.NewMemoryLogsRepository()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &domain.LogEntry{
			ID:        string(rune('a' + i)),
			UserID:    "u",
			UserName:  "U",
			Action:    "test",
			Details:   []byte("{}"),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	// Newest first.
	require.Equal(t, "e", limited[0].ID)

	n, err := repo.Purge(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, n)

	remaining, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, remaining)
}

func TestMemoryNotifications_MarkRead(t *testing.T) {
	repo := repository.NewMemoryNotificationsRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Notification{
		ID:     "n1",
		UserID: "u1",
		Type:   "task",
		Title:  "New task",
	}))

	n, err := repo.MarkRead(ctx, "n1")
	require.NoError(t, err)
	require.True(t, n.IsRead)

	_, err = repo.MarkRead(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryNotifications_ListScopedToUser(t *testing.T) {
	repo := repository.NewMemoryNotificationsRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Notification{ID: "n1", UserID: "u1"}))
	require.NoError(t, repo.Create(ctx, &domain.Notification{ID: "n2", UserID: "u2"}))

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "n1", list[0].ID)
}

func TestMemoryUsers_UpdateIsSparse(t *testing.T) {
	repo := repository.NewMemoryUsersRepository()
	ctx := context.Background()

	room := "101"
	require.NoError(t, repo.Create(ctx, &domain.User{
		ID:        "a8098c1a-f86e-11da-bd1a-00112444be1e",
		Email:     "anna@dorm.example",
		Name:      "Anna",
		Role:      "member",
		Room:      &room,
		Positions: []string{},
	}))

	newName := "Anna B"
	updated, err := repo.Update(ctx, "a8098c1a-f86e-11da-bd1a-00112444be1e", repository.UserUpdate{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, "Anna B", updated.Name)
	require.NotNil(t, updated.Room)
	require.Equal(t, "101", *updated.Room)
	require.Equal(t, "member", updated.Role)
}

func TestMemoryUsers_DuplicateEmail(t *testing.T) {
	repo := repository.NewMemoryUsersRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{
		ID: "a8098c1a-f86e-11da-bd1a-00112444be1e", Email: "anna@dorm.example", Name: "Anna",
	}))
	err := repo.Create(ctx, &domain.User{
		ID: "b8098c1a-f86e-11da-bd1a-00112444be1e", Email: "anna@dorm.example", Name: "Clone",
	})
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestMemoryTasks_EmptyUpdateReturnsRow(t *testing.T) {
	repo := repository.NewMemoryTasksRepository()
	ctx := context.Background()

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &domain.Task{
		ID:        "t1",
		Title:     "Sweep stairs",
		Status:    "pending",
		Priority:  "medium",
		CreatedAt: created,
		UpdatedAt: created,
	}))

	// No fields set: the current row comes back untouched, not ErrNotFound,
	// and UpdatedAt does not move.
	got, err := repo.Update(ctx, "t1", repository.TaskUpdate{})
	require.NoError(t, err)
	require.Equal(t, "Sweep stairs", got.Title)
	require.Equal(t, created, got.UpdatedAt)

	_, err = repo.Update(ctx, "missing", repository.TaskUpdate{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryWorkShifts_CompleteAccumulates(t *testing.T) {
	repo := repository.NewMemoryWorkShiftsRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.WorkShift{
		ID: "s1", UserID: "u1", UserName: "Anna", Days: 5,
	}))

	s, err := repo.Complete(ctx, "s1", 2, "mgr", "Boss")
	require.NoError(t, err)
	require.Equal(t, 2, s.CompletedDays)

	s, err = repo.Complete(ctx, "s1", 1, "mgr", "Boss")
	require.NoError(t, err)
	require.Equal(t, 3, s.CompletedDays)
}
