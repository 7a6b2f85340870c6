package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListedFile(t *testing.T) {
	modTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		entry    ListedFile
		wantPath string
		wantName string
		wantDir  bool
		wantSize int64
	}{
		{
			name:     "ディレクトリエントリ",
			entry:    NewListedFile("/test/dir", "dir", true, 4096, modTime),
			wantPath: "/test/dir",
			wantName: "dir",
			wantDir:  true,
			wantSize: 4096,
		},
		{
			name:     "ファイルエントリ",
			entry:    NewListedFile("/test/file.txt", "file.txt", false, 12, modTime),
			wantPath: "/test/file.txt",
			wantName: "file.txt",
			wantDir:  false,
			wantSize: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			require.Equal(tt.wantPath, tt.entry.Path())
			require.Equal(tt.wantName, tt.entry.Name())
			require.Equal(tt.wantDir, tt.entry.IsDir())
			require.Equal(tt.wantSize, tt.entry.Size())
			require.True(modTime.Equal(tt.entry.ModTime()))
		})
	}
}
