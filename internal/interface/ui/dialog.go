// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"

	"DirLister/internal/infrastructure/filesystem"
)

// ErrCancelled はユーザーがダイアログをキャンセルしたことを表します
var ErrCancelled = errors.New("ディレクトリの選択がキャンセルされました")

// DirectorySelector はディレクトリ選択機能を提供します
type DirectorySelector struct {
	// validator はディレクトリパスの検証を行うインターフェースです
	validator filesystem.DirectoryValidator
	browse    func(title string) (string, error)
}

// NewDirectorySelector は新しい DirectorySelector インスタンスを作成します
func NewDirectorySelector(validator filesystem.DirectoryValidator) *DirectorySelector {
	return &DirectorySelector{
		validator: validator,
		browse:    browseDirectory,
	}
}

// SelectDirectory はダイアログを表示してディレクトリを選択します
func (d *DirectorySelector) SelectDirectory(title string) (string, error) {
	selectedDir, err := d.browse(title)
	if err != nil {
		return "", err
	}

	if err := d.validator.ValidateDirectoryPath(selectedDir); err != nil {
		return "", fmt.Errorf("無効なディレクトリが選択されました: %w", err)
	}

	return selectedDir, nil
}

func browseDirectory(title string) (string, error) {
	selectedDir, err := dialog.Directory().Title(title).Browse()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("ディレクトリ選択ダイアログでエラーが発生しました: %w", err)
	}
	return selectedDir, nil
}
