//go:build unit

package commands_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/gistbackup/internal/domain/commands"
	"github.com/rios0rios0/gistbackup/internal/domain/entities"
	"github.com/rios0rios0/gistbackup/internal/domain/repositories"
	doubles "github.com/rios0rios0/gistbackup/test/infrastructure/repositorydoubles"
)

func newBackupCommand(
	gists repositories.GistRepository,
	syncer repositories.SyncerRepository,
	archiver repositories.ArchiverRepository,
) *commands.BackupCommand {
	return commands.NewBackupCommand(
		func(_ string) repositories.GistRepository { return gists },
		func(_ string) repositories.SyncerRepository { return syncer },
		archiver,
	)
}

func gist(id string) entities.Gist {
	return entities.Gist{
		ID:      id,
		PullURL: "https://gist.github.com/" + id + ".git",
	}
}

func TestBackupCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should stop after five consecutive empty pages at the same page number", func(t *testing.T) {
		t.Parallel()

		// given
		gists := &doubles.SpyGistRepository{}
		syncer := &doubles.SpySyncerRepository{}
		archiver := &doubles.SpyArchiverRepository{}
		cmd := newBackupCommand(gists, syncer, archiver)

		// when
		err := cmd.Execute(context.Background(), &entities.Settings{
			Token:     "test-token",
			Directory: t.TempDir(),
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1, 1, 1, 1}, gists.RequestedPages)
		assert.Empty(t, syncer.CloneCalls)
		assert.Empty(t, archiver.Calls)
	})

	t.Run("should advance the page and reset retries only after a non-empty page", func(t *testing.T) {
		t.Parallel()

		// given: empty, empty, three gists, then nothing but empties
		gists := &doubles.SpyGistRepository{
			Responses: [][]entities.Gist{
				{},
				{},
				{gist("g1"), gist("g2"), gist("g3")},
			},
		}
		syncer := &doubles.SpySyncerRepository{}
		cmd := newBackupCommand(gists, syncer, &doubles.SpyArchiverRepository{})

		// when
		err := cmd.Execute(context.Background(), &entities.Settings{
			Token:     "test-token",
			Directory: t.TempDir(),
		})

		// then: page 1 retried twice, then five empties at page 2 end the run
		require.NoError(t, err)
		assert.Equal(t, []int{1, 1, 1, 2, 2, 2, 2, 2}, gists.RequestedPages)
		require.Len(t, syncer.CloneCalls, 3)
		assert.Equal(t, "https://gist.github.com/g1.git", syncer.CloneCalls[0].URL)
		assert.Equal(t, "https://gist.github.com/g3.git", syncer.CloneCalls[2].URL)
	})

	t.Run("should update instead of clone when the gist directory already exists", func(t *testing.T) {
		t.Parallel()

		// given
		directory := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(directory, "g1"), 0o755))

		gists := &doubles.SpyGistRepository{
			Responses: [][]entities.Gist{{gist("g1"), gist("g2")}},
		}
		syncer := &doubles.SpySyncerRepository{}
		cmd := newBackupCommand(gists, syncer, &doubles.SpyArchiverRepository{})

		// when
		err := cmd.Execute(context.Background(), &entities.Settings{
			Token:     "test-token",
			Directory: directory,
		})

		// then
		require.NoError(t, err)
		require.Len(t, syncer.UpdateCalls, 1)
		assert.Equal(t, filepath.Join(directory, "g1"), syncer.UpdateCalls[0])
		require.Len(t, syncer.CloneCalls, 1)
		assert.Equal(t, filepath.Join(directory, "g2"), syncer.CloneCalls[0].Directory)
	})

	t.Run("should only update on a second run against an unchanged listing", func(t *testing.T) {
		t.Parallel()

		// given
		directory := t.TempDir()
		listing := []entities.Gist{gist("g1"), gist("g2")}

		firstSyncer := &doubles.SpySyncerRepository{CreateDirs: true}
		firstRun := newBackupCommand(
			&doubles.SpyGistRepository{Responses: [][]entities.Gist{listing}},
			firstSyncer,
			&doubles.SpyArchiverRepository{},
		)
		require.NoError(t, firstRun.Execute(context.Background(), &entities.Settings{
			Token:     "test-token",
			Directory: directory,
		}))
		require.Len(t, firstSyncer.CloneCalls, 2)

		secondSyncer := &doubles.SpySyncerRepository{CreateDirs: true}
		secondRun := newBackupCommand(
			&doubles.SpyGistRepository{Responses: [][]entities.Gist{listing}},
			secondSyncer,
			&doubles.SpyArchiverRepository{},
		)

		// when
		err := secondRun.Execute(context.Background(), &entities.Settings{
			Token:     "test-token",
			Directory: directory,
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, secondSyncer.CloneCalls)
		assert.Len(t, secondSyncer.UpdateCalls, 2)
	})

	t.Run("should archive the populated temporary workspace and remove it afterwards", func(t *testing.T) {
		t.Parallel()

		// given
		outputPath := filepath.Join(t.TempDir(), "out.tar.gz")
		gists := &doubles.SpyGistRepository{
			Responses: [][]entities.Gist{{gist("g1")}},
		}
		archiver := &doubles.SpyArchiverRepository{}
		cmd := newBackupCommand(gists, &doubles.SpySyncerRepository{CreateDirs: true}, archiver)

		// when
		err := cmd.Execute(context.Background(), &entities.Settings{
			Token: "test-token",
			Archive: &entities.ArchiveRequest{
				Format:     entities.ArchiveGzip,
				OutputPath: outputPath,
			},
		})

		// then
		require.NoError(t, err)
		require.Len(t, archiver.Calls, 1)
		assert.Equal(t, entities.ArchiveGzip, archiver.Calls[0].Request.Format)
		assert.Equal(t, outputPath, archiver.Calls[0].Request.OutputPath)
		assert.True(t, archiver.SourceDirExisted[0], "workspace must still exist at archive time")
		assert.NoDirExists(t, archiver.Calls[0].SourceDir, "temporary workspace must be removed after success")
	})

	t.Run("should keep a persistent directory after a successful run", func(t *testing.T) {
		t.Parallel()

		// given
		directory := filepath.Join(t.TempDir(), "backup")
		gists := &doubles.SpyGistRepository{
			Responses: [][]entities.Gist{{gist("g1")}},
		}
		cmd := newBackupCommand(gists, &doubles.SpySyncerRepository{CreateDirs: true}, &doubles.SpyArchiverRepository{})

		// when
		err := cmd.Execute(context.Background(), &entities.Settings{
			Token:     "test-token",
			Directory: directory,
		})

		// then
		require.NoError(t, err)
		assert.DirExists(t, directory)
	})

	t.Run("should abort and remove even a persistent workspace when a sync fails", func(t *testing.T) {
		t.Parallel()

		// given
		directory := filepath.Join(t.TempDir(), "backup")
		gists := &doubles.SpyGistRepository{
			Responses: [][]entities.Gist{{gist("g1")}},
		}
		syncer := &doubles.SpySyncerRepository{CloneErr: errors.New("network error")}
		archiver := &doubles.SpyArchiverRepository{}
		cmd := newBackupCommand(gists, syncer, archiver)

		// when
		err := cmd.Execute(context.Background(), &entities.Settings{
			Token:     "test-token",
			Directory: directory,
			Archive: &entities.ArchiveRequest{
				Format:     entities.ArchiveGzip,
				OutputPath: filepath.Join(t.TempDir(), "out.tar.gz"),
			},
		})

		// then: fail-fast, no archive, workspace gone
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to clone gist g1")
		assert.Empty(t, archiver.Calls)
		assert.NoDirExists(t, directory)
	})

	t.Run("should fail fast when the listing endpoint errors", func(t *testing.T) {
		t.Parallel()

		// given
		gists := &doubles.SpyGistRepository{ListErr: errors.New("boom")}
		archiver := &doubles.SpyArchiverRepository{}
		cmd := newBackupCommand(gists, &doubles.SpySyncerRepository{}, archiver)

		// when
		err := cmd.Execute(context.Background(), &entities.Settings{
			Token:     "test-token",
			Directory: filepath.Join(t.TempDir(), "backup"),
		})

		// then
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to list gists (page 1)")
		assert.Empty(t, archiver.Calls)
	})

	t.Run("should stop and clean up when the context is canceled", func(t *testing.T) {
		t.Parallel()

		// given
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		directory := filepath.Join(t.TempDir(), "backup")
		gists := &doubles.SpyGistRepository{
			Responses: [][]entities.Gist{{gist("g1")}},
		}
		archiver := &doubles.SpyArchiverRepository{}
		cmd := newBackupCommand(gists, &doubles.SpySyncerRepository{}, archiver)

		// when
		err := cmd.Execute(ctx, &entities.Settings{
			Token:     "test-token",
			Directory: directory,
			Archive: &entities.ArchiveRequest{
				Format:     entities.ArchiveBzip2,
				OutputPath: filepath.Join(t.TempDir(), "out.tar.bz2"),
			},
		})

		// then: interrupt surfaces as a failed run, no archive, workspace removed
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, gists.RequestedPages)
		assert.Empty(t, archiver.Calls)
		assert.NoDirExists(t, directory)
	})

	t.Run("should fail for a pull URL without a usable path segment", func(t *testing.T) {
		t.Parallel()

		// given
		gists := &doubles.SpyGistRepository{
			Responses: [][]entities.Gist{{{ID: "broken", PullURL: "https://gist.github.com/"}}},
		}
		cmd := newBackupCommand(gists, &doubles.SpySyncerRepository{}, &doubles.SpyArchiverRepository{})

		// when
		err := cmd.Execute(context.Background(), &entities.Settings{
			Token:     "test-token",
			Directory: filepath.Join(t.TempDir(), "backup"),
		})

		// then
		require.Error(t, err)
		assert.ErrorContains(t, err, "cannot derive directory name")
	})
}
