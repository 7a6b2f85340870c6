// Package config は設定の読み込みを提供します
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"DirLister/internal/infrastructure/filesystem"
	"DirLister/internal/infrastructure/logging"
)

// 設定キー
const (
	ConfigFileKey     = "config"
	LogLevelKey       = "log-level"
	LogFormatKey      = "log-format"
	SkipUnreadableKey = "skip-unreadable"
	OutputKey         = "output"
)

// EnvPrefix は環境変数の接頭辞です（例: DIRLISTER_LOG_LEVEL）
const EnvPrefix = "DIRLISTER"

// Config はアプリケーションの設定を表します
type Config struct {
	LogLevel       string
	LogFormat      string
	SkipUnreadable bool
	OutputDir      string
}

// EntryPolicy は設定に対応する filesystem.EntryPolicy を返します
func (c Config) EntryPolicy() filesystem.EntryPolicy {
	if c.SkipUnreadable {
		return filesystem.EntryPolicySkip
	}
	return filesystem.EntryPolicyAbort
}

// RegisterFlags は共通フラグを登録します
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", "設定ファイルのパス")
	fs.String(LogLevelKey, logging.LevelInfo, "ログレベル (debug, info, warn, error)")
	fs.String(LogFormatKey, logging.FormatConsole, "ログ形式 (json, console)")
	fs.Bool(SkipUnreadableKey, false, "情報を取得できないエントリをスキップする")
}

// NewViper はデフォルト値と環境変数を設定した viper を作成します
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(LogLevelKey, logging.LevelInfo)
	v.SetDefault(LogFormatKey, logging.FormatConsole)
	v.SetDefault(SkipUnreadableKey, false)
	v.SetDefault(OutputKey, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load はフラグ、環境変数、設定ファイルから設定を読み込みます。
// 優先順位はフラグ > 環境変数 > 設定ファイル > デフォルト値です。
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("フラグの設定に失敗しました: %w", err)
		}
	}

	if file := v.GetString(ConfigFileKey); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
		}
	}

	cfg := Config{
		LogLevel:       v.GetString(LogLevelKey),
		LogFormat:      v.GetString(LogFormatKey),
		SkipUnreadable: v.GetBool(SkipUnreadableKey),
		OutputDir:      v.GetString(OutputKey),
	}

	switch strings.ToLower(cfg.LogFormat) {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return Config{}, fmt.Errorf("不正なログ形式です: %q", cfg.LogFormat)
	}

	return cfg, nil
}
