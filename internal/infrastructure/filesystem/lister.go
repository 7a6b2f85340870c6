// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"io/fs"
	"os"

	"DirLister/internal/domain/model"
	"DirLister/internal/infrastructure/logging"
)

// EntryPolicy は個々のエントリの情報取得に失敗したときの扱いを表します
type EntryPolicy int

const (
	// EntryPolicyAbort は一覧取得全体を失敗させます
	EntryPolicyAbort EntryPolicy = iota
	// EntryPolicySkip はそのエントリを除外して処理を続けます
	EntryPolicySkip
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// DirectoryLister はディレクトリ一覧とファイル読み込みを提供するインターフェースです
type DirectoryLister interface {
	DirectoryValidator
	List(path string) ([]model.ListedFile, error)
	ListDetailed(path string) (model.Listing, error)
	ReadFile(path string) ([]byte, error)
}

// Option は Lister の設定を変更します
type Option func(*Lister)

// WithEntryPolicy はエントリ単位の失敗時の扱いを設定します
func WithEntryPolicy(policy EntryPolicy) Option {
	return func(l *Lister) {
		l.policy = policy
	}
}

// Lister はディレクトリ直下の一覧取得とファイル読み込みを行う構造体です。
// 呼び出し間で状態を持たないため、複数の goroutine から同時に利用できます。
type Lister struct {
	logger logging.Logger
	policy EntryPolicy
	// probe はエントリのメタデータを取得します
	probe func(fs.DirEntry) (fs.FileInfo, error)
}

// NewLister は新しい Lister インスタンスを作成します
func NewLister(logger logging.Logger, opts ...Option) *Lister {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	l := &Lister{
		logger: logger,
		policy: EntryPolicyAbort,
		probe:  fs.DirEntry.Info,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ValidateDirectoryPath はパスが有効なディレクトリであることを確認します
func (l *Lister) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリを確認できません: %w", model.NewListError(model.OpList, path, err))
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません: %s", path)
	}

	return nil
}

// List はディレクトリ直下のエントリを OS の列挙順で返します
func (l *Lister) List(path string) ([]model.ListedFile, error) {
	listing, err := l.ListDetailed(path)
	if err != nil {
		return nil, err
	}
	return listing.Files, nil
}

// ListDetailed はディレクトリ直下のエントリと、スキップしたエントリを返します。
// スキップが発生するのは EntryPolicySkip の場合のみです。
func (l *Lister) ListDetailed(path string) (model.Listing, error) {
	dir, err := os.Open(path)
	if err != nil {
		return model.Listing{}, model.NewListError(model.OpList, path, err)
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return model.Listing{}, model.NewListError(model.OpList, path, err)
	}

	listing := model.Listing{
		Files: make([]model.ListedFile, 0, len(entries)),
	}
	for _, entry := range entries {
		entryPath := joinEntryPath(path, entry.Name())

		info, err := l.probe(entry)
		if err != nil {
			if l.policy == EntryPolicyAbort {
				return model.Listing{}, model.NewListError(model.OpList, entryPath, err)
			}
			l.logger.Log(logging.LevelWarn, fmt.Sprintf("エントリ '%s' の情報取得に失敗したためスキップ", entryPath), err)
			listing.Skipped = append(listing.Skipped, model.SkippedEntry{
				Path: entryPath,
				Err:  model.NewListError(model.OpList, entryPath, err),
			})
			continue
		}

		listing.Files = append(listing.Files, model.NewListedFile(
			entryPath,
			entry.Name(),
			entry.IsDir(),
			info.Size(),
			info.ModTime(),
		))
	}

	l.logger.Log(logging.LevelDebug, fmt.Sprintf("'%s' から %d 件のエントリを取得", path, len(listing.Files)), nil)
	return listing, nil
}

// ReadFile はファイル全体をメモリに読み込みます
func (l *Lister) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, model.NewListError(model.OpRead, path, err)
	}
	return content, nil
}

// joinEntryPath は dir をそのまま残してエントリ名を連結します。
// filepath.Join と異なり "./" や ".." を正規化しません。
func joinEntryPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
