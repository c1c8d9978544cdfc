// Package playlists provides database operations for named playlists.
package playlists

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/rotor/internal/db"
	"github.com/llehouerou/rotor/internal/library"
)

// Playlist represents playlist metadata (without tracks).
type Playlist struct {
	ID        int64
	Name      string
	CreatedAt int64
	UpdatedAt int64
}

// Playlists provides database operations for playlists.
type Playlists struct {
	db *sql.DB
}

// New creates a new Playlists instance.
func New(db *sql.DB) *Playlists {
	return &Playlists{db: db}
}

// Replace makes the playlist with the given name contain exactly trackIDs,
// in order. The playlist row is created if it does not exist yet; an
// existing playlist keeps its identity and creation time. Everything runs
// in one transaction.
func (p *Playlists) Replace(name string, trackIDs []int64) error {
	now := time.Now().Unix()
	return dbutil.WithTx(p.db, func(tx *sql.Tx) error {
		var id int64
		err := tx.QueryRow(`SELECT id FROM playlists WHERE name = ?`, name).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			result, err := tx.Exec(`
				INSERT INTO playlists (name, created_at, updated_at)
				VALUES (?, ?, ?)
			`, name, now, now)
			if err != nil {
				return err
			}
			if id, err = result.LastInsertId(); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if _, err := tx.Exec(`DELETE FROM playlist_tracks WHERE playlist_id = ?`, id); err != nil {
				return err
			}
			if _, err := tx.Exec(`UPDATE playlists SET updated_at = ? WHERE id = ?`, now, id); err != nil {
				return err
			}
		}

		stmt, err := tx.Prepare(`
			INSERT INTO playlist_tracks (playlist_id, position, library_track_id)
			VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, trackID := range trackIDs {
			if _, err := stmt.Exec(id, i, trackID); err != nil {
				return err
			}
		}
		return nil
	})
}

// Get returns the playlist with the given name, or nil if it does not
// exist.
func (p *Playlists) Get(name string) (*Playlist, error) {
	row := p.db.QueryRow(`
		SELECT id, name, created_at, updated_at
		FROM playlists
		WHERE name = ?
	`, name)

	var pl Playlist
	err := row.Scan(&pl.ID, &pl.Name, &pl.CreatedAt, &pl.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pl, nil
}

// Tracks returns the playlist's tracks in position order, joined with
// catalog data.
func (p *Playlists) Tracks(name string) ([]library.Track, error) {
	rows, err := p.db.Query(`
		SELECT lt.id, lt.path, lt.mtime, lt.artist, lt.album, lt.title,
		       lt.rating, lt.play_count, lt.last_played
		FROM playlist_tracks pt
		JOIN playlists pl ON pt.playlist_id = pl.id
		JOIN library_tracks lt ON pt.library_track_id = lt.id
		WHERE pl.name = ?
		ORDER BY pt.position
	`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []library.Track
	for rows.Next() {
		var t library.Track
		if err := rows.Scan(&t.ID, &t.Path, &t.Mtime, &t.Artist, &t.Album, &t.Title,
			&t.Rating, &t.PlayCount, &t.LastPlayed); err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}
