package mbtiles

import (
	"bytes"
	"database/sql"
	"image"
	"image/png"
	"path/filepath"
	"testing"
)

func TestMBTiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relief.mbtiles")

	mbTiles, err := Open(path, "relief", "png")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	tile := image.NewGray(image.Rect(0, 0, 4, 4))
	// top left tile of LOD 2 is TMS row 3
	if err := mbTiles.WriteTile(2, 0, 0, tile); err != nil {
		t.Fatalf("WriteTile() error = %v", err)
	}
	// writing the same tile again replaces it
	if err := mbTiles.WriteTile(2, 0, 0, tile); err != nil {
		t.Fatalf("WriteTile() error = %v", err)
	}
	if err := mbTiles.SetZoomRange(0, 2); err != nil {
		t.Fatalf("SetZoomRange() error = %v", err)
	}
	if err := mbTiles.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT count(*) FROM tiles").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("tiles = %d, want 1", count)
	}

	var data []byte
	if err := db.QueryRow("SELECT tile_data FROM tiles WHERE zoom_level = 2 AND tile_column = 0 AND tile_row = 3").Scan(&data); err != nil {
		t.Fatalf("tile at TMS row 3: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("tile_data isn't a PNG: %v", err)
	}

	meta := map[string]string{}
	rows, err := db.Query("SELECT name, value FROM metadata")
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			t.Fatal(err)
		}
		meta[name] = value
	}

	want := map[string]string{"name": "relief", "format": "png", "type": "baselayer", "minzoom": "0", "maxzoom": "2"}
	for k, v := range want {
		if meta[k] != v {
			t.Errorf("metadata %s = %q, want %q", k, meta[k], v)
		}
	}
}

func TestOpen_BadPath(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope", "x.mbtiles"), "x", "png"); err == nil {
		t.Error("Open() error = nil, want error")
	}
}
