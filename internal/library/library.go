// Package library manages the track catalog and its playback statistics.
package library

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RatingExcluded is the top of the 0-20 rating domain. A track rated
// RatingExcluded is excluded from rotation entirely; it is a sentinel,
// not an error.
const RatingExcluded = 20

// ErrTrackNotFound is returned when an operation targets a track ID that
// is not in the catalog.
var ErrTrackNotFound = errors.New("track not found")

// Track is a catalog entry. Rating 0 means "unrated", LastPlayed 0 means
// "never played".
type Track struct {
	ID         int64
	Path       string
	Mtime      int64
	Artist     string
	Album      string
	Title      string
	Rating     int
	PlayCount  int
	LastPlayed int64 // unix seconds
}

type Library struct {
	db *sql.DB
}

func New(db *sql.DB) *Library {
	return &Library{db: db}
}

// Tracks returns the whole catalog.
func (l *Library) Tracks() ([]Track, error) {
	rows, err := l.db.Query(`
		SELECT id, path, mtime, artist, album, title, rating, play_count, last_played
		FROM library_tracks
		ORDER BY artist COLLATE NOCASE, album COLLATE NOCASE, title COLLATE NOCASE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []Track
	for rows.Next() {
		var t Track
		if err := rows.Scan(&t.ID, &t.Path, &t.Mtime, &t.Artist, &t.Album, &t.Title,
			&t.Rating, &t.PlayCount, &t.LastPlayed); err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// TrackByID returns a track by its ID.
func (l *Library) TrackByID(id int64) (*Track, error) {
	row := l.db.QueryRow(`
		SELECT id, path, mtime, artist, album, title, rating, play_count, last_played
		FROM library_tracks
		WHERE id = ?
	`, id)

	var t Track
	err := row.Scan(&t.ID, &t.Path, &t.Mtime, &t.Artist, &t.Album, &t.Title,
		&t.Rating, &t.PlayCount, &t.LastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTrackNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (l *Library) TrackCount() (int, error) {
	var count int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM library_tracks`).Scan(&count)
	return count, err
}

// SetRating sets a track's rating. The rating domain is 0 to
// RatingExcluded inclusive.
func (l *Library) SetRating(id int64, rating int) error {
	if rating < 0 || rating > RatingExcluded {
		return fmt.Errorf("rating %d out of range 0-%d", rating, RatingExcluded)
	}

	result, err := l.db.Exec(`
		UPDATE library_tracks SET rating = ?, updated_at = ? WHERE id = ?
	`, rating, time.Now().Unix(), id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// RecordPlay increments a track's play count and stamps its last-played
// time.
func (l *Library) RecordPlay(id int64, playedAt time.Time) error {
	result, err := l.db.Exec(`
		UPDATE library_tracks
		SET play_count = play_count + 1, last_played = ?, updated_at = ?
		WHERE id = ?
	`, playedAt.Unix(), time.Now().Unix(), id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTrackNotFound
	}
	return nil
}
