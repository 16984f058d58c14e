package validate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "dem.asc")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		check   func(string) error
		path    string
		wantErr bool
	}{
		{"input file", InputFile, file, false},
		{"input is dir", InputFile, dir, true},
		{"input missing", InputFile, filepath.Join(dir, "nope.asc"), true},
		{"output dir", OutputDirectory, dir, false},
		{"output dir is file", OutputDirectory, file, true},
		{"output file", OutputFile, filepath.Join(dir, "out.png"), false},
		{"output file in missing dir", OutputFile, filepath.Join(dir, "nope", "out.png"), true},
		{"output file is dir", OutputFile, dir, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
