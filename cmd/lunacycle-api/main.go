package main

import (
	"os"

	"lunacycle/internal/platform/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Get().Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
