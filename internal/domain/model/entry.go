// package model はドメインモデルを定義します
package model

import "time"

// ListedFile はディレクトリ直下の要素（ファイルまたはディレクトリ）を表します。
// 生成後は変更されません。
type ListedFile struct {
	path    string
	name    string
	isDir   bool
	size    int64
	modTime time.Time
}

// NewListedFile は新しい ListedFile を作成します
func NewListedFile(path, name string, isDir bool, size int64, modTime time.Time) ListedFile {
	return ListedFile{
		path:    path,
		name:    name,
		isDir:   isDir,
		size:    size,
		modTime: modTime,
	}
}

// Path は問い合わせたディレクトリとエントリ名を結合したパスを返します
func (f ListedFile) Path() string { return f.path }

// Name はエントリのベース名を返します
func (f ListedFile) Name() string { return f.name }

// IsDir は列挙時点でディレクトリであったかどうかを返します
func (f ListedFile) IsDir() bool { return f.isDir }

// Size はエントリのサイズ（バイト）を返します
func (f ListedFile) Size() int64 { return f.size }

// ModTime はエントリの更新日時を返します
func (f ListedFile) ModTime() time.Time { return f.modTime }

// SkippedEntry は読み取りに失敗して一覧から除外されたエントリを表します
type SkippedEntry struct {
	// Path は除外されたエントリのパスです
	Path string
	// Err は除外の原因となったエラーです
	Err error
}

// Listing は一覧取得の詳細な結果を表します
type Listing struct {
	// Files は取得できたエントリです。順序は OS の列挙順のままです
	Files []ListedFile
	// Skipped はスキップされたエントリです
	Skipped []SkippedEntry
}
