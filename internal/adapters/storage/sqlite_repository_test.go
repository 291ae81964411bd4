package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/inboxsim/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSQLiteRepository_RunRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	started := time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, domain.Run{
		ID:          "01HRUN",
		LogPath:     "/data/p01/log.csv",
		Participant: "p01",
		StartedAt:   started,
		StudyPath:   "/studies/a.yaml",
	}))
	require.NoError(t, repo.StartSession(ctx, "01HRUN", domain.RunSession{Name: "training", Position: 0, StartedAt: started}))
	require.NoError(t, repo.StartSession(ctx, "01HRUN", domain.RunSession{Name: "main", Position: 1, StartedAt: started.Add(time.Minute)}))
	require.NoError(t, repo.FinishSession(ctx, "01HRUN", 0, started.Add(time.Minute), 8, 3))
	require.NoError(t, repo.Finish(ctx, "01HRUN", domain.RunStatusFinished, started.Add(2*time.Minute)))

	run, err := repo.Get(ctx, "01HRUN")
	require.NoError(t, err)
	assert.Equal(t, "p01", run.Participant)
	assert.Equal(t, domain.RunStatusFinished, run.Status)
	require.NotNil(t, run.FinishedAt)
	require.Len(t, run.Sessions, 2)
	assert.Equal(t, "training", run.Sessions[0].Name)
	assert.Equal(t, 8, run.Sessions[0].Visible)
	assert.Equal(t, 3, run.Sessions[0].Unread)
	require.NotNil(t, run.Sessions[0].FinishedAt)
	assert.Nil(t, run.Sessions[1].FinishedAt)
}

func TestSQLiteRepository_GetUnknownRun(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestSQLiteRepository_UpdatesUnknownRunFail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.StartSession(ctx, "missing", domain.RunSession{Name: "a"}), domain.ErrRunNotFound)
	assert.ErrorIs(t, repo.FinishSession(ctx, "missing", 0, time.Now(), 0, 0), domain.ErrRunNotFound)
	assert.ErrorIs(t, repo.Finish(ctx, "missing", domain.RunStatusAborted, time.Now()), domain.ErrRunNotFound)
}

func TestSQLiteRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, domain.Run{ID: id, Participant: "p", StartedAt: base.Add(time.Duration(i) * time.Hour)}))
	}
	require.NoError(t, repo.StartSession(ctx, "b", domain.RunSession{Name: "only", StartedAt: base}))

	runs, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)
	assert.Equal(t, domain.RunStatusRunning, runs[1].Status)
	require.Len(t, runs[1].Sessions, 1)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
