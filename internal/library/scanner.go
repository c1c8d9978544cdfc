package library

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"golang.org/x/sync/errgroup"

	dbutil "github.com/llehouerou/rotor/internal/db"
)

const scanWorkers = 8

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".oga":  true,
	".opus": true,
	".m4a":  true,
	".mp4":  true,
}

// ScanStats holds the counts for a completed scan.
type ScanStats struct {
	Added   int
	Updated int
	Removed int
}

type fileInfo struct {
	path  string
	mtime int64
}

type scannedTrack struct {
	fileInfo
	artist string
	album  string
	title  string
}

// Scan performs an incremental scan of the given source directories.
// New files are added, files whose mtime changed are re-read, and catalog
// entries whose files are gone are removed. Ratings and play statistics
// survive rescans since updates never touch those columns.
func (l *Library) Scan(sources []string) (ScanStats, error) {
	var stats ScanStats

	files, err := discoverFiles(sources)
	if err != nil {
		return stats, err
	}

	existing, err := l.tracksByPath()
	if err != nil {
		return stats, err
	}

	// Only read tags for new or modified files.
	toProcess := make([]fileInfo, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		seen[f.path] = true
		if t, ok := existing[f.path]; ok && t.Mtime == f.mtime {
			continue
		}
		toProcess = append(toProcess, f)
	}

	results := make([]scannedTrack, len(toProcess))
	var g errgroup.Group
	g.SetLimit(scanWorkers)
	for i, f := range toProcess {
		g.Go(func() error {
			st, err := readTags(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", f.path, err)
			}
			results[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	now := time.Now().Unix()
	err = dbutil.WithTx(l.db, func(tx *sql.Tx) error {
		for _, st := range results {
			if _, ok := existing[st.path]; ok {
				_, err := tx.Exec(`
					UPDATE library_tracks
					SET mtime = ?, artist = ?, album = ?, title = ?, updated_at = ?
					WHERE path = ?
				`, st.mtime, st.artist, st.album, st.title, now, st.path)
				if err != nil {
					return err
				}
				stats.Updated++
			} else {
				_, err := tx.Exec(`
					INSERT INTO library_tracks (path, mtime, artist, album, title, added_at, updated_at)
					VALUES (?, ?, ?, ?, ?, ?, ?)
				`, st.path, st.mtime, st.artist, st.album, st.title, now, now)
				if err != nil {
					return err
				}
				stats.Added++
			}
		}

		for path, t := range existing {
			if seen[path] {
				continue
			}
			if _, err := tx.Exec(`DELETE FROM library_tracks WHERE id = ?`, t.ID); err != nil {
				return err
			}
			stats.Removed++
		}
		return nil
	})
	return stats, err
}

func discoverFiles(sources []string) ([]fileInfo, error) {
	var files []fileInfo
	for _, src := range sources {
		err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !audioExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			files = append(files, fileInfo{path: path, mtime: info.ModTime().Unix()})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// readTags reads track metadata from a music file. A file with unreadable
// tags still yields a usable catalog entry named after the file.
func readTags(f fileInfo) (scannedTrack, error) {
	st := scannedTrack{fileInfo: f}

	file, err := os.Open(f.path)
	if err != nil {
		return st, err
	}
	defer file.Close()

	m, err := tag.ReadFrom(file)
	if err != nil {
		st.title = filepath.Base(f.path)
		return st, nil
	}

	st.title = m.Title()
	if st.title == "" {
		st.title = filepath.Base(f.path)
	}
	st.artist = m.Artist()
	st.album = m.Album()
	return st, nil
}

func (l *Library) tracksByPath() (map[string]Track, error) {
	tracks, err := l.Tracks()
	if err != nil {
		return nil, err
	}
	byPath := make(map[string]Track, len(tracks))
	for _, t := range tracks {
		byPath[t.Path] = t
	}
	return byPath, nil
}
