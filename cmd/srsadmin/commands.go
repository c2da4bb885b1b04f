package main

import (
	"fmt"
	"time"

	"go_5_exam_review/internal/middleware"
	"go_5_exam_review/internal/repository"
	"go_5_exam_review/internal/service"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	labelColor   = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users, bookmarks and test_results tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repository.AutoMigrate(a.db); err != nil {
				return err
			}
			successColor.Fprintln(cmd.OutOrStdout(), "Migration completed.")
			return nil
		},
	}
}

func newPacingCommand(a *app) *cobra.Command {
	var userFlag string
	var mode float64

	command := &cobra.Command{
		Use:   "pacing",
		Short: "Set a user's pacing mode and recompute every bookmark's next review date",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return fmt.Errorf("invalid --user %q: %w", userFlag, err)
			}

			svc := service.NewScheduleService(a.db, repository.NewGormUserRepository(), repository.NewGormBookmarkRepository(), a.cfg, a.clock)
			resp, err := svc.UpdatePacing(cmd.Context(), userID, mode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			successColor.Fprintf(out, "Pacing updated to %+.2f for %s (today: %s)\n", mode, userID, resp.Today)
			labelColor.Fprint(out, "  updated:   ")
			fmt.Fprintln(out, resp.UpdatedCount)
			labelColor.Fprint(out, "  newly due: ")
			fmt.Fprintln(out, resp.NewlyDueCount)
			return nil
		},
	}
	command.Flags().StringVar(&userFlag, "user", "", "User ID")
	command.Flags().Float64Var(&mode, "mode", 0, "Pacing mode between -1.0 (intensive) and 1.0 (relaxed)")
	_ = command.MarkFlagRequired("user")
	_ = command.MarkFlagRequired("mode")
	return command
}

func newDelayCommand(a *app) *cobra.Command {
	var userFlag string
	var days int

	command := &cobra.Command{
		Use:   "delay",
		Short: "Shift every review date of a user by the given number of days",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return fmt.Errorf("invalid --user %q: %w", userFlag, err)
			}

			svc := service.NewScheduleService(a.db, repository.NewGormUserRepository(), repository.NewGormBookmarkRepository(), a.cfg, a.clock)
			resp, err := svc.DelayAllReviews(cmd.Context(), userID, days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			successColor.Fprintf(out, "Reviews shifted by %+d day(s) for %s (today: %s)\n", days, userID, resp.Today)
			labelColor.Fprint(out, "  updated: ")
			fmt.Fprintln(out, resp.UpdatedCount)
			labelColor.Fprint(out, "  now due: ")
			fmt.Fprintln(out, resp.NowDueCount)
			if resp.UpdatedCount == 0 {
				warnColor.Fprintln(out, "  no bookmark had a date to shift")
			}
			return nil
		},
	}
	command.Flags().StringVar(&userFlag, "user", "", "User ID")
	command.Flags().IntVar(&days, "days", 0, "Days to shift (negative pulls reviews forward)")
	_ = command.MarkFlagRequired("user")
	_ = command.MarkFlagRequired("days")
	return command
}

// newTokenCommand は開発・運用確認用に API のアクセストークンを発行する
func newTokenCommand(a *app) *cobra.Command {
	var userFlag string
	var ttl time.Duration

	command := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return fmt.Errorf("invalid --user %q: %w", userFlag, err)
			}
			if a.cfg.JWT.SecretKey == "" {
				return fmt.Errorf("jwt.secret_key is not configured")
			}
			token, err := middleware.IssueUserToken(userID, a.cfg.JWT.SecretKey, ttl)
			if err != nil {
				return fmt.Errorf("middleware.IssueUserToken() > %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	command.Flags().StringVar(&userFlag, "user", "", "User ID")
	command.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	_ = command.MarkFlagRequired("user")
	return command
}
