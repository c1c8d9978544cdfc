package playlists

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rotor/internal/store"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	st, err := store.OpenAt(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return st.DB()
}

func insertTracks(t *testing.T, db *sql.DB, n int) []int64 {
	t.Helper()

	ids := make([]int64, n)
	for i := range n {
		result, err := db.Exec(`
			INSERT INTO library_tracks (path, mtime, artist, album, title, added_at, updated_at)
			VALUES (?, 0, 'Artist', 'Album', ?, 0, 0)
		`, "/music/"+string(rune('a'+i))+".mp3", "Song")
		require.NoError(t, err)
		id, err := result.LastInsertId()
		require.NoError(t, err)
		ids[i] = id
	}
	return ids
}

func TestReplace_CreatesPlaylist(t *testing.T) {
	db := setupTestDB(t)
	p := New(db)
	ids := insertTracks(t, db, 3)

	err := p.Replace("Rotation", []int64{ids[2], ids[0], ids[1]})
	require.NoError(t, err)

	pl, err := p.Get("Rotation")
	require.NoError(t, err)
	require.NotNil(t, pl)
	require.Equal(t, "Rotation", pl.Name)

	tracks, err := p.Tracks("Rotation")
	require.NoError(t, err)
	require.Len(t, tracks, 3)
	require.Equal(t, ids[2], tracks[0].ID)
	require.Equal(t, ids[0], tracks[1].ID)
	require.Equal(t, ids[1], tracks[2].ID)
}

func TestReplace_OverwritesExisting(t *testing.T) {
	db := setupTestDB(t)
	p := New(db)
	ids := insertTracks(t, db, 3)

	require.NoError(t, p.Replace("Rotation", []int64{ids[0], ids[1], ids[2]}))

	first, err := p.Get("Rotation")
	require.NoError(t, err)

	// Replace with a different, shorter order.
	require.NoError(t, p.Replace("Rotation", []int64{ids[1]}))

	second, err := p.Get("Rotation")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID, "replace must keep the playlist's identity")

	tracks, err := p.Tracks("Rotation")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	require.Equal(t, ids[1], tracks[0].ID)
}

func TestReplace_EmptyTrackList(t *testing.T) {
	db := setupTestDB(t)
	p := New(db)
	ids := insertTracks(t, db, 2)

	require.NoError(t, p.Replace("Rotation", ids))
	require.NoError(t, p.Replace("Rotation", nil))

	tracks, err := p.Tracks("Rotation")
	require.NoError(t, err)
	require.Empty(t, tracks)
}

func TestGet_Missing(t *testing.T) {
	p := New(setupTestDB(t))

	pl, err := p.Get("Nope")

	require.NoError(t, err)
	require.Nil(t, pl)
}

func TestTracks_Missing(t *testing.T) {
	p := New(setupTestDB(t))

	tracks, err := p.Tracks("Nope")

	require.NoError(t, err)
	require.Empty(t, tracks)
}

func TestReplace_SeparateNames(t *testing.T) {
	db := setupTestDB(t)
	p := New(db)
	ids := insertTracks(t, db, 2)

	require.NoError(t, p.Replace("Rotation", []int64{ids[0]}))
	require.NoError(t, p.Replace("Other", []int64{ids[1]}))

	rotation, err := p.Tracks("Rotation")
	require.NoError(t, err)
	other, err := p.Tracks("Other")
	require.NoError(t, err)

	require.Len(t, rotation, 1)
	require.Len(t, other, 1)
	require.Equal(t, ids[0], rotation[0].ID)
	require.Equal(t, ids[1], other[0].ID)
}
