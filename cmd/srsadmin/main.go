// cmd/srsadmin/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"go_5_exam_review/internal/config"
	"go_5_exam_review/internal/repository"
	"go_5_exam_review/internal/srs"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// app はサブコマンドが共有する依存関係。テストでは db と clock を差し替える。
type app struct {
	configDir string
	cfg       *config.Config
	db        *gorm.DB
	clock     srs.Clock
	logger    *slog.Logger
}

func main() {
	a := &app{
		logger: slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.Kitchen})),
	}
	if err := newRootCommand(a).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "srsadmin",
		Short:         "Maintenance commands for exam review schedules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().StringVar(&a.configDir, "config", "configs", "Directory containing config.yaml")

	root.AddCommand(
		newMigrateCommand(a),
		newPacingCommand(a),
		newDelayCommand(a),
		newTokenCommand(a),
	)
	return root
}

// init は設定と DB 接続を用意する (設定済みのものはそのまま使う)
func (a *app) init() error {
	slog.SetDefault(a.logger)
	if a.cfg == nil {
		if err := config.LoadConfig(a.configDir); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		a.cfg = &config.Cfg
	}
	if a.clock == nil {
		a.clock = srs.SystemClock{Location: a.cfg.Location()}
	}
	if a.db == nil {
		db, err := repository.NewDB(a.cfg.Database.URL, a.logger)
		if err != nil {
			return fmt.Errorf("repository.NewDB() > %w", err)
		}
		a.db = db
	}
	return nil
}
