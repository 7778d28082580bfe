package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"resume-press/internal/shared/config"
	"resume-press/internal/shared/server"
	"resume-press/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	if err := seedResume(cfg); err != nil {
		telemetry.Error("seed.failed", map[string]any{"error": err.Error()})
	}

	r := server.NewRouter(cfg)
	addr := server.Addr(cfg.Port)

	telemetry.Info("server.start", map[string]any{
		"addr":     addr,
		"env":      cfg.Env,
		"data_dir": cfg.DataDir,
	})

	if err := r.Run(addr); err != nil {
		telemetry.Error("server.exit", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// seedResume copies the bundled sample document into the data directory on
// first boot so the editor opens with something to show.
func seedResume(cfg config.Config) error {
	target := filepath.Join(cfg.DataDir, cfg.ResumeFile)
	if _, err := os.Stat(target); err == nil {
		return nil
	}

	src, err := os.Open(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("open seed resume: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create resume file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy seed resume: %w", err)
	}

	telemetry.Info("seed.copied", map[string]any{"target": target})
	return nil
}
