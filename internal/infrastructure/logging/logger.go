// Package logging はロギング機能を提供します
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// ログレベル
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// 出力フォーマット
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

const consoleTimeFormat = "15:04:05"

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
}

// ZeroLogger は zerolog でログを出力するロガーです
type ZeroLogger struct {
	zlog zerolog.Logger
}

// NewJSONLogger はJSONフォーマットで出力するロガーを作成します
func NewJSONLogger(writer io.Writer) *ZeroLogger {
	if writer == nil {
		writer = os.Stdout
	}
	return &ZeroLogger{
		zlog: zerolog.New(writer).With().Timestamp().Logger(),
	}
}

// NewConsoleLogger は人が読みやすい形式で出力するロガーを作成します
func NewConsoleLogger(writer io.Writer) *ZeroLogger {
	if writer == nil {
		writer = os.Stderr
	}
	output := zerolog.ConsoleWriter{
		Out:        writer,
		TimeFormat: consoleTimeFormat,
	}
	return &ZeroLogger{
		zlog: zerolog.New(output).With().Timestamp().Logger(),
	}
}

// NewNopLogger は何も出力しないロガーを作成します
func NewNopLogger() *ZeroLogger {
	return &ZeroLogger{zlog: zerolog.Nop()}
}

// New は format に応じたロガーを作成します
func New(format string, writer io.Writer) *ZeroLogger {
	if strings.EqualFold(format, FormatJSON) {
		return NewJSONLogger(writer)
	}
	return NewConsoleLogger(writer)
}

// Log はメッセージを指定レベルで出力します
func (l *ZeroLogger) Log(level, message string, err error) {
	event := l.zlog.WithLevel(parseLevel(level))
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(message)
}

// SetGlobalLevel は出力する最小レベルを設定します
func SetGlobalLevel(level string) {
	zerolog.SetGlobalLevel(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
