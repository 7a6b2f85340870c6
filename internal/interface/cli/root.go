// Package cli はコマンドラインインターフェースを提供します
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"DirLister/internal/domain/model"
	"DirLister/internal/infrastructure/config"
	"DirLister/internal/infrastructure/filesystem"
	"DirLister/internal/infrastructure/logging"
	"DirLister/internal/interface/ui"
	"DirLister/internal/usecase/report"
)

// 終了コード
const (
	ExitOK               = 0
	ExitFailure          = 1
	ExitNotFound         = 2
	ExitPermissionDenied = 3
)

// Version はビルド時に上書きされます
var Version = "dev"

// DirectorySelector はディレクトリを対話的に選択するインターフェースです
type DirectorySelector interface {
	SelectDirectory(title string) (string, error)
}

// app はコマンド間で共有する状態です
type app struct {
	stdout io.Writer
	stderr io.Writer

	v         *viper.Viper
	cfg       config.Config
	logger    logging.Logger
	lister    *filesystem.Lister
	generator *report.Generator

	newSelector func(filesystem.DirectoryValidator) DirectorySelector
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		v:         config.NewViper(),
		logger:    logging.NewConsoleLogger(stderr),
		generator: report.NewGenerator(),
		newSelector: func(v filesystem.DirectoryValidator) DirectorySelector {
			return ui.NewDirectorySelector(v)
		},
	}
}

// NewRootCmd はルートコマンドを作成します
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	return newApp(stdout, stderr).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dirlister",
		Short:         "ディレクトリの一覧表示とファイル読み込み",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.SetGlobalLevel(cfg.LogLevel)
			a.logger = logging.New(cfg.LogFormat, a.stderr)
			a.lister = filesystem.NewLister(a.logger, filesystem.WithEntryPolicy(cfg.EntryPolicy()))
			return nil
		},
	}

	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(a.lsCmd(), a.catCmd(), a.snapshotCmd())
	return rootCmd
}

// Execute はコマンドを実行し、終了コードを返します
func Execute(args []string) int {
	a := newApp(os.Stdout, os.Stderr)
	cmd := a.rootCmd()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		a.logger.Log(logging.LevelError, "コマンドの実行に失敗しました", err)
		return ExitCode(err)
	}
	return ExitOK
}

// ExitCode はエラーの種類に応じた終了コードを返します
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, model.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, model.ErrPermissionDenied):
		return ExitPermissionDenied
	default:
		return ExitFailure
	}
}

// expandPath は先頭の ~ をホームディレクトリに展開します
func expandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("パスの展開に失敗しました: %w", err)
	}
	return expanded, nil
}

// pathArg は引数があればそれを、なければ "." を返します
func pathArg(args []string) (string, error) {
	if len(args) == 0 {
		return ".", nil
	}
	return expandPath(args[0])
}
