// Package mbtiles stores raster tiles in an MBTiles SQLite database.
package mbtiles

import (
	"bytes"
	"database/sql"
	"image"
	"image/png"
	"strconv"

	// registers the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// MBTiles is an open MBTiles file.
type MBTiles struct {
	db             *sql.DB
	tileInsertStmt *sql.Stmt
	metaInsertStmt *sql.Stmt
}

// Open creates or opens the MBTiles file at path and sets its name and format metadata.
func Open(path string, name string, format string) (*MBTiles, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	// sqlite allows one writer at a time
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		PRAGMA application_id = 0x4d504258;
		CREATE TABLE IF NOT EXISTS metadata (name text, value text);
		CREATE UNIQUE INDEX IF NOT EXISTS metadata_index on metadata (name);
		CREATE TABLE IF NOT EXISTS tiles (zoom_level integer, tile_column integer, tile_row integer, tile_data blob);
		CREATE UNIQUE INDEX IF NOT EXISTS tile_index on tiles (zoom_level, tile_column, tile_row);
	`)
	if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "creating schema in %s", path)
	}

	tileInsertStmt, err := db.Prepare("INSERT OR REPLACE INTO tiles (zoom_level, tile_column, tile_row, tile_data) VALUES (?, ?, ?, ?);")
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "preparing tile insert")
	}

	metaInsertStmt, err := db.Prepare("INSERT OR REPLACE INTO metadata (name, value) VALUES (?, ?);")
	if err != nil {
		tileInsertStmt.Close()
		db.Close()
		return nil, errors.Wrap(err, "preparing metadata insert")
	}

	mbTiles := &MBTiles{db: db, tileInsertStmt: tileInsertStmt, metaInsertStmt: metaInsertStmt}

	err = mbTiles.InsertMeta(map[string]string{
		"name":   name,
		"format": format,
		"type":   "baselayer",
	})
	if err != nil {
		mbTiles.Close()
		return nil, err
	}

	return mbTiles, nil
}

// Close releases the database file.
func (mbTiles *MBTiles) Close() error {
	if err := mbTiles.tileInsertStmt.Close(); err != nil {
		return err
	}
	if err := mbTiles.metaInsertStmt.Close(); err != nil {
		return err
	}
	return mbTiles.db.Close()
}

// InsertTile inserts encoded tile data at (z, x, y). y is a TMS row, counted from the bottom.
func (mbTiles *MBTiles) InsertTile(z, x, y int, tileData []byte) error {
	_, err := mbTiles.tileInsertStmt.Exec(z, x, y, tileData)
	return errors.Wrapf(err, "inserting tile %d/%d/%d", z, x, y)
}

// InsertMeta sets metadata entries.
func (mbTiles *MBTiles) InsertMeta(entries map[string]string) error {
	for name, value := range entries {
		if _, err := mbTiles.metaInsertStmt.Exec(name, value); err != nil {
			return errors.Wrapf(err, "setting metadata %s", name)
		}
	}
	return nil
}

// SetZoomRange records the minzoom and maxzoom metadata.
func (mbTiles *MBTiles) SetZoomRange(minZoom, maxZoom uint8) error {
	return mbTiles.InsertMeta(map[string]string{
		"minzoom": strconv.Itoa(int(minZoom)),
		"maxzoom": strconv.Itoa(int(maxZoom)),
	})
}

// WriteTile encodes tile as PNG and stores it. row counts from the top like XYZ
// tiles and is flipped to the TMS scheme MBTiles uses.
func (mbTiles *MBTiles) WriteTile(lod uint8, col, row int, tile image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, tile); err != nil {
		return errors.Wrapf(err, "encoding tile %d/%d/%d", lod, col, row)
	}

	tmsRow := (1 << lod) - 1 - row
	return mbTiles.InsertTile(int(lod), col, tmsRow, buf.Bytes())
}
