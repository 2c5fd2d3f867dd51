package main

import "github.com/HulkBetii/YT-AllInOne/internal/cli"

func main() {
	cli.Execute()
}
