// Package config はwavsplitコマンドの設定管理を行います
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
)

const Version = "0.1.0"

const (
	// DefaultSegmentSeconds はセグメント長のデフォルト値（秒）
	DefaultSegmentSeconds = 5.0

	// DefaultOutputDir は出力ディレクトリのデフォルト値
	DefaultOutputDir = "samples"
)

// Config はアプリケーションの設定を保持します
type Config struct {
	InputPath      string
	OutputDir      string
	SegmentSeconds float64
	DebugMode      bool
	DryRun         bool
	ShowVersion    bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	config := &Config{}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s: [options] [input.wav]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  --input string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tpath to the input WAV file")
		fmt.Fprintln(flag.CommandLine.Output(), "  -i string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tpath to the input WAV file (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  -o string")
		fmt.Fprintf(flag.CommandLine.Output(), "    \toutput directory for the segment files (default %q)\n", DefaultOutputDir)
		fmt.Fprintln(flag.CommandLine.Output(), "  --seconds float")
		fmt.Fprintf(flag.CommandLine.Output(), "    \tlength of each segment in seconds (default %g)\n", DefaultSegmentSeconds)
		fmt.Fprintln(flag.CommandLine.Output(), "  -s float")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tlength of each segment in seconds (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --debug")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tenable debug output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --dry-run")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow the segments without writing output files")
		fmt.Fprintln(flag.CommandLine.Output(), "  -n\tshow the segments without writing output files (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --version")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow version information")
		fmt.Fprintln(flag.CommandLine.Output(), "  -v\tshow version information (shorthand)")
	}

	// 入力ファイル
	flag.StringVar(&config.InputPath, "input", "", "path to the input WAV file")
	flag.StringVar(&config.InputPath, "i", "", "path to the input WAV file (shorthand)")

	// 出力ディレクトリ
	flag.StringVar(&config.OutputDir, "o", DefaultOutputDir, "output directory for the segment files")

	// セグメント長
	flag.Float64Var(&config.SegmentSeconds, "seconds", DefaultSegmentSeconds, "length of each segment in seconds")
	flag.Float64Var(&config.SegmentSeconds, "s", DefaultSegmentSeconds, "length of each segment in seconds (shorthand)")

	// デバッグモード
	flag.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// ドライランモード
	flag.BoolVar(&config.DryRun, "dry-run", false, "show the segments without writing output files")
	flag.BoolVar(&config.DryRun, "n", false, "show the segments without writing output files (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()

	// 入力ファイルは位置引数でも指定できる
	if config.InputPath == "" && flag.NArg() > 0 {
		config.InputPath = flag.Arg(0)
	}

	return config
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("wavsplit version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
	out     io.Writer
}

// NewDebugLoggerWithWriter は出力先を指定してDebugLoggerを作成します。
// out が nil の場合は標準出力に書き込みます。
func NewDebugLoggerWithWriter(enabled bool, out io.Writer) *DebugLogger {
	if out == nil {
		out = os.Stdout
	}
	return &DebugLogger{enabled: enabled, out: out}
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if !d.enabled {
		return
	}
	fmt.Fprintf(d.out, format, a...)
}
