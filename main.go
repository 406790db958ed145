package main

import (
	"github.com/joho/godotenv"

	"voicecut/cmd"
)

func main() {
	_ = godotenv.Load() // best-effort: load .env if present

	cmd.Execute()
}
