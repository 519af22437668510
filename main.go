package main

import (
	"log"
	"os"
	"srcfuse/cmd"
	"srcfuse/pkg/logging"
	"srcfuse/pkg/version"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger, err := logging.Setup(false, "SrcFuse", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Execute the root command
	if err := cmd.Execute(logger); err != nil {
		logger.Error("srcfuse execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}

	syncLogger(logger)
}

// syncLogger flushes buffered log entries. The logger writes to stdout;
// syncing stdout reports "invalid argument" on some platforms when it is
// a pipe, so only check it when stdout is a terminal or a regular file.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stdout.Fd())) && !isRegularFile(os.Stdout) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false // Assume not a regular file if we can't get the file info
	}
	return fileInfo.Mode().IsRegular()
}
