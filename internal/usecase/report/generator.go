// Package report はレポート生成機能を提供します
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"DirLister/internal/domain/model"
)

const (
	OutputFilePrefix       = "listing_"
	OutputFileSuffix       = ".txt"
	TimestampLayout        = "20060102_150405"
	ListingTimeLayout      = "2006-01-02 15:04"
	DefaultBinaryCheckSize = 1024
)

// ContentReader はファイル内容の読み込み機能を提供するインターフェースです
type ContentReader interface {
	ReadFile(path string) ([]byte, error)
}

// Generator はレポート生成機能を提供します
type Generator struct {
	binaryCheckSize int
	now             func() time.Time
}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator() *Generator {
	return &Generator{
		binaryCheckSize: DefaultBinaryCheckSize,
		now:             time.Now,
	}
}

// CreateOutputFile は出力ファイルを作成します
func (g *Generator) CreateOutputFile(outputDir string) (*os.File, string, error) {
	timestamp := g.now().Format(TimestampLayout)
	outputPath := filepath.Join(outputDir, fmt.Sprintf("%s%s%s", OutputFilePrefix, timestamp, OutputFileSuffix))

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, "", fmt.Errorf("出力ファイルの作成に失敗しました: %w", err)
	}

	return outputFile, outputPath, nil
}

// WriteListing はフォルダ（[DIR]）とファイル（[FILE]）を一覧で出力します
func (g *Generator) WriteListing(writer io.Writer, files []model.ListedFile) {
	for _, file := range files {
		entryType := "[FILE]"
		if file.IsDir() {
			entryType = "[DIR] "
		}
		fmt.Fprintf(writer, "%s %s\n", entryType, file.Name())
	}
}

// WriteLongListing はサイズと更新日時を付けて一覧を出力します
func (g *Generator) WriteLongListing(writer io.Writer, files []model.ListedFile) {
	for _, file := range files {
		entryType := "[FILE]"
		if file.IsDir() {
			entryType = "[DIR] "
		}
		fmt.Fprintf(writer, "%s %10d %s %s\n", entryType, file.Size(), file.ModTime().Format(ListingTimeLayout), file.Name())
	}
}

// WriteListingReport は見出し付きで一覧を出力します。
// スキップされたエントリがあれば末尾に列挙します。
func (g *Generator) WriteListingReport(writer io.Writer, root string, listing model.Listing) {
	fmt.Fprintf(writer, "===== %s =====\n", root)
	g.WriteListing(writer, listing.Files)

	if len(listing.Skipped) > 0 {
		fmt.Fprintln(writer, "\n===== スキップしたエントリ =====")
		for _, s := range listing.Skipped {
			fmt.Fprintf(writer, "%s: %s\n", s.Path, describe(s.Err))
		}
	}
}

// WriteFileContents はディレクトリ以外のエントリの内容を出力します
func (g *Generator) WriteFileContents(writer io.Writer, reader ContentReader, files []model.ListedFile) {
	fmt.Fprintln(writer, "\n===== ファイル内容 =====")

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		fmt.Fprintf(writer, "----- %s -----\n", file.Name())
		content, err := reader.ReadFile(file.Path())
		switch {
		case err != nil:
			fmt.Fprintf(writer, "[読み込みエラー] %s\n", describe(err))
		case g.IsBinary(content):
			fmt.Fprintln(writer, "[バイナリファイルのためスキップ]")
		default:
			fmt.Fprintln(writer, string(content))
		}
		fmt.Fprintln(writer, "------------------------")
	}
}

// IsBinary は与えられたバイトデータがバイナリかどうかを判定します
func (g *Generator) IsBinary(content []byte) bool {
	checkSize := g.binaryCheckSize
	if len(content) < checkSize {
		checkSize = len(content)
	}

	// タブ・改行・復帰以外の制御文字（NULL を含む）を検出
	for i := 0; i < checkSize; i++ {
		if isBinaryByte(content[i]) {
			return true
		}
	}
	return false
}

func isBinaryByte(b byte) bool {
	switch b {
	case '\t', '\n', '\r':
		return false
	}
	return b < 0x20
}

func describe(err error) string {
	var le *model.ListError
	if errors.As(err, &le) {
		if le.Kind == model.KindUnknown && le.Detail() != "" {
			return fmt.Sprintf("%s (%s)", le.Description(), le.Detail())
		}
		return le.Description()
	}
	return err.Error()
}
