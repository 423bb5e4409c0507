// Package main is the entry point for the trendyol seller CLI.
package main

import (
	"github.com/donaldgifford/trendyol-seller/cmd/trendyol/cmd"
)

func main() {
	cmd.Execute()
}
