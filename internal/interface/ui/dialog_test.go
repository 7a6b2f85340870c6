package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type mockValidator struct {
	validateError error
	validated     []string
}

func (m *mockValidator) ValidateDirectoryPath(path string) error {
	m.validated = append(m.validated, path)
	return m.validateError
}

func TestDirectorySelector_SelectDirectory(t *testing.T) {
	tests := []struct {
		name          string
		browsePath    string
		browseError   error
		validateError error
		wantPath      string
		wantErr       error
	}{
		{
			name:       "選択とバリデーション成功",
			browsePath: "/data/project",
			wantPath:   "/data/project",
		},
		{
			name:          "バリデーションエラー",
			browsePath:    "/data/file.txt",
			validateError: errors.New("無効なディレクトリ"),
		},
		{
			name:        "キャンセル",
			browseError: ErrCancelled,
			wantErr:     ErrCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			validator := &mockValidator{validateError: tt.validateError}
			selector := NewDirectorySelector(validator)
			// ネイティブダイアログの代わりに固定の結果を返す
			selector.browse = func(title string) (string, error) {
				require.Equal("テスト", title)
				return tt.browsePath, tt.browseError
			}

			path, err := selector.SelectDirectory("テスト")
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(err, tt.wantErr)
				require.Empty(validator.validated)
			case tt.validateError != nil:
				require.ErrorIs(err, tt.validateError)
				require.Empty(path)
			default:
				require.NoError(err)
				require.Equal(tt.wantPath, path)
				require.Equal([]string{tt.browsePath}, validator.validated)
			}
		})
	}
}
