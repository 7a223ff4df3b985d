package main

import (
	"os"
)

func main() {
	loadEnvFiles()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
