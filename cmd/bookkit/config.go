package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const fallbackShift = 3

func loadEnvFiles() {
	// Do not override environment provided by the shell.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// defaultShift is the Caesar shift used when --shift is not given.
func defaultShift() int {
	raw := getEnv("BOOKKIT_SHIFT", strconv.Itoa(fallbackShift))
	shift, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config invalid BOOKKIT_SHIFT=%q, using %d", raw, fallbackShift)
		return fallbackShift
	}
	return shift
}
