package model

import (
	"errors"
	"io/fs"
)

// ErrorKind はファイルシステム操作の失敗の種類を表します
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindPermissionDenied
)

// String は種類ごとの説明文を返します
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "Not Found"
	case KindPermissionDenied:
		return "Access Denied"
	default:
		return "Unknown Error"
	}
}

// 操作名
const (
	OpList = "list"
	OpRead = "read"
)

// ListError は一覧取得とファイル読み込みの両方で使われるエラーです。
// Err には OS が返した元のエラーが入ります。
type ListError struct {
	Kind ErrorKind
	Op   string
	Path string
	Err  error
}

// errors.Is で種類を判定するためのエラー値
var (
	ErrNotFound         = &ListError{Kind: KindNotFound}
	ErrPermissionDenied = &ListError{Kind: KindPermissionDenied}
	ErrUnknown          = &ListError{Kind: KindUnknown}
)

// NewListError は OS のエラーを分類して ListError を作成します
func NewListError(op, path string, err error) *ListError {
	return &ListError{
		Kind: Classify(err),
		Op:   op,
		Path: path,
		Err:  err,
	}
}

func (e *ListError) Error() string {
	return e.Kind.String()
}

// Description は種類の説明文を返します
func (e *ListError) Description() string {
	return e.Kind.String()
}

// Detail は元のエラーのメッセージを返します
func (e *ListError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// Is は種類が一致する ListError を同一とみなします
func (e *ListError) Is(target error) bool {
	t, ok := target.(*ListError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Classify は OS のエラーを ErrorKind に変換します
func Classify(err error) ErrorKind {
	var le *ListError
	switch {
	case errors.As(err, &le):
		return le.Kind
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermissionDenied
	default:
		return KindUnknown
	}
}

// KindOf はエラーチェーンから ErrorKind を取り出します。
// ListError を含まない場合は false を返します。
func KindOf(err error) (ErrorKind, bool) {
	var le *ListError
	if errors.As(err, &le) {
		return le.Kind, true
	}
	return KindUnknown, false
}
