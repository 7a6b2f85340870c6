// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"os"

	"DirLister/internal/interface/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
