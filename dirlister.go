// Package dirlister はディレクトリ直下の一覧取得とファイル読み込みを提供します。
//
// 失敗はすべて *ListError として返され、errors.Is で ErrNotFound、
// ErrPermissionDenied、ErrUnknown と比較できます。元の OS のエラーも
// ラップされているため、errors.Is(err, fs.ErrNotExist) も利用できます。
package dirlister

import (
	"DirLister/internal/domain/model"
	"DirLister/internal/infrastructure/filesystem"
	"DirLister/internal/infrastructure/logging"
)

type (
	ListedFile = model.ListedFile
	ListError  = model.ListError
	ErrorKind  = model.ErrorKind
)

const (
	KindUnknown          = model.KindUnknown
	KindNotFound         = model.KindNotFound
	KindPermissionDenied = model.KindPermissionDenied
)

var (
	ErrNotFound         = model.ErrNotFound
	ErrPermissionDenied = model.ErrPermissionDenied
	ErrUnknown          = model.ErrUnknown
)

var defaultLister = filesystem.NewLister(logging.NewNopLogger())

// List は path 直下のエントリを OS の列挙順で返します。
// いずれかのエントリの情報取得に失敗した場合は全体が失敗します。
func List(path string) ([]ListedFile, error) {
	return defaultLister.List(path)
}

// ReadFile はファイル全体を読み込みます
func ReadFile(path string) ([]byte, error) {
	return defaultLister.ReadFile(path)
}
