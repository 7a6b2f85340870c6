package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"DirLister/internal/infrastructure/config"
	"DirLister/internal/infrastructure/logging"
)

func (a *app) lsCmd() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "ディレクトリ直下のエントリを一覧表示します",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := pathArg(args)
			if err != nil {
				return err
			}

			listing, err := a.lister.ListDetailed(dir)
			if err != nil {
				return fmt.Errorf("'%s' の一覧取得に失敗しました: %w", dir, err)
			}

			if long {
				a.generator.WriteLongListing(a.stdout, listing.Files)
			} else {
				a.generator.WriteListing(a.stdout, listing.Files)
			}
			if n := len(listing.Skipped); n > 0 {
				a.logger.Log(logging.LevelWarn, fmt.Sprintf("%d 件のエントリをスキップしました", n), nil)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "サイズと更新日時も表示する")
	return cmd
}

func (a *app) catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>",
		Short: "ファイルの内容をそのまま出力します",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := expandPath(args[0])
			if err != nil {
				return err
			}

			content, err := a.lister.ReadFile(path)
			if err != nil {
				return fmt.Errorf("'%s' の読み込みに失敗しました: %w", path, err)
			}

			if _, err := a.stdout.Write(content); err != nil {
				return fmt.Errorf("出力に失敗しました: %w", err)
			}
			return nil
		},
	}
}

func (a *app) snapshotCmd() *cobra.Command {
	var pick bool

	cmd := &cobra.Command{
		Use:   "snapshot [dir]",
		Short: "一覧とファイル内容をレポートファイルに書き出します",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.snapshotSource(args, pick)
			if err != nil {
				return err
			}

			outputDir := a.cfg.OutputDir
			if outputDir == "" {
				outputDir = "."
			}
			if outputDir, err = expandPath(outputDir); err != nil {
				return err
			}
			if err := a.lister.ValidateDirectoryPath(outputDir); err != nil {
				return fmt.Errorf("出力先が無効です: %w", err)
			}

			listing, err := a.lister.ListDetailed(source)
			if err != nil {
				return fmt.Errorf("'%s' の一覧取得に失敗しました: %w", source, err)
			}

			outputFile, outputPath, err := a.generator.CreateOutputFile(outputDir)
			if err != nil {
				return err
			}
			defer outputFile.Close()

			a.generator.WriteListingReport(outputFile, source, listing)
			a.generator.WriteFileContents(outputFile, a.lister, listing.Files)

			a.logger.Log(logging.LevelInfo, fmt.Sprintf("レポートを生成しました: %s", outputPath), nil)
			fmt.Fprintln(a.stdout, outputPath)
			return nil
		},
	}

	cmd.Flags().StringP(config.OutputKey, "o", "", "レポートの出力先ディレクトリ")
	cmd.Flags().BoolVar(&pick, "pick", false, "対象フォルダをダイアログで選択する")
	return cmd
}

func (a *app) snapshotSource(args []string, pick bool) (string, error) {
	if !pick {
		return pathArg(args)
	}
	if len(args) > 0 {
		return "", fmt.Errorf("--pick と対象フォルダは同時に指定できません")
	}

	source, err := a.newSelector(a.lister).SelectDirectory("対象フォルダを選択")
	if err != nil {
		return "", fmt.Errorf("対象フォルダの選択に失敗しました: %w", err)
	}
	a.logger.Log(logging.LevelInfo, fmt.Sprintf("選択されたフォルダ: %s", source), nil)
	return source, nil
}
