package logging

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// logEntry は zerolog が出力するJSONの1行を表します
type logEntry struct {
	Timestamp string `json:"time"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		message   string
		err       error
		wantLevel string
	}{
		{
			name:      "エラーなしのログ",
			level:     LevelInfo,
			message:   "テストメッセージ",
			wantLevel: "info",
		},
		{
			name:      "エラーありのログ",
			level:     LevelError,
			message:   "エラーメッセージ",
			err:       errors.New("テストエラー"),
			wantLevel: "error",
		},
		{
			name:      "不明なレベルは info として扱う",
			level:     "verbose",
			message:   "不明",
			wantLevel: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			var buf strings.Builder
			logger := NewJSONLogger(&buf)

			logger.Log(tt.level, tt.message, tt.err)

			var entry logEntry
			require.NoError(json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))

			require.Equal(tt.message, entry.Message)
			require.Equal(tt.wantLevel, entry.Level)
			if tt.err != nil {
				require.Equal(tt.err.Error(), entry.Error)
			} else {
				require.Empty(entry.Error)
			}

			// タイムスタンプが現在時刻に近いことを確認
			logTime, err := time.Parse(time.RFC3339, entry.Timestamp)
			require.NoError(err)
			require.Less(time.Since(logTime), time.Minute)
		})
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf strings.Builder
	logger := New(FormatConsole, &buf)

	logger.Log(LevelWarn, "スキップしました", errors.New("消えた"))

	out := buf.String()
	require.Contains(t, out, "スキップしました")
	require.Contains(t, out, "消えた")
}

func TestNopLogger(t *testing.T) {
	// 出力先を持たないため、呼び出してもパニックしないことのみ確認
	NewNopLogger().Log(LevelError, "無視される", errors.New("x"))
}

func TestSetGlobalLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf strings.Builder
	logger := NewJSONLogger(&buf)

	SetGlobalLevel(LevelWarn)
	logger.Log(LevelInfo, "出力されない", nil)
	require.Empty(t, buf.String())

	logger.Log(LevelError, "出力される", nil)
	require.Contains(t, buf.String(), "出力される")
}
