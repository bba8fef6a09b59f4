// Package main 运维命令：建表、重置本地状态、授予角色、导入视频目录
package main

import (
	"Kajoogram/internal/api/config"
	"Kajoogram/internal/model"
	"Kajoogram/internal/pkg/consts"
	"Kajoogram/internal/pkg/database"
	"Kajoogram/internal/pkg/logger"
	"Kajoogram/internal/repository"
	"Kajoogram/internal/service"
	"Kajoogram/internal/wire"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "kajooctl",
		Short:        "Kajoogram maintenance commands",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./configs", "directory containing config.yaml")

	load := func() (*config.Config, *wire.Infra, error) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Init(cfg.Logstash)
		infra, err := wire.NewInfra(cfg)
		if err != nil {
			return nil, nil, err
		}
		return cfg, infra, nil
	}

	rootCmd.AddCommand(newMigrateCmd(load))
	rootCmd.AddCommand(newSnapshotCmd(load))
	rootCmd.AddCommand(newGrantRoleCmd(load))
	rootCmd.AddCommand(newSeedVideosCmd(load))
	return rootCmd
}

type loader func() (*config.Config, *wire.Infra, error)

// newMigrateCmd 建表、写入内置角色与默认页面
func newMigrateCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables, seed roles and default content pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, infra, err := load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			defer infra.Close(ctx)

			if err = database.Migrate(infra.DB); err != nil {
				return err
			}
			roles := []*model.Role{{Name: consts.RoleUser}, {Name: consts.RoleAdmin}}
			if err = repository.NewRoleRepo(infra.DB).EnsureRoles(ctx, roles); err != nil {
				return fmt.Errorf("seed roles: %w", err)
			}

			store, err := wire.NewSnapshotStore(ctx, infra.Redis, cfg.Snapshot)
			if err != nil {
				return err
			}
			if _, err = service.NewContentService(ctx, store); err != nil {
				return fmt.Errorf("seed pages: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migration finished")
			return nil
		},
	}
}

func newSnapshotCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage mirrored local state (pages, reports, notifications)",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Wipe every mirrored collection and the version tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, infra, err := load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			defer infra.Close(ctx)

			store, err := wire.NewSnapshotStore(ctx, infra.Redis, cfg.Snapshot)
			if err != nil {
				return err
			}
			if err = store.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "snapshot reset: %v\n", store.Names())
			return nil
		},
	})
	return cmd
}

func newGrantRoleCmd(load loader) *cobra.Command {
	var revoke bool

	cmd := &cobra.Command{
		Use:   "grant-role <email> <role>",
		Short: "Grant (or revoke with --revoke) a role to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, infra, err := load()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			defer infra.Close(ctx)

			userRepo := repository.NewUserRepo(infra.DB)
			user, err := userRepo.GetUserByEmail(ctx, args[0])
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("user %q not found", args[0])
			}

			roles := service.NewUserRolesService(repository.NewUserRolesRepo(infra.DB), userRepo)
			action := "granted"
			if revoke {
				action = "revoked"
				err = roles.RevokeRole(ctx, user.ID, args[1])
			} else {
				err = roles.GrantRole(ctx, user.ID, args[1])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %d (%s): %s %s\n", user.ID, user.Email, args[1], action)
			return nil
		},
	}
	cmd.Flags().BoolVar(&revoke, "revoke", false, "revoke the role instead of granting it")
	return cmd
}

// videoSeed 视频目录导入文件格式
type videoSeed struct {
	Channels []*model.Channel `json:"channels"`
	Videos   []*model.Video   `json:"videos"`
}

func newSeedVideosCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-videos <file.json>",
		Short: "Import channels and videos from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var seed videoSeed
			if err = json.Unmarshal(raw, &seed); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			_, infra, err := load()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()
			defer infra.Close(context.Background())

			repo := repository.NewVideoRepo(infra.DB)
			if err = repo.UpsertChannels(ctx, seed.Channels); err != nil {
				return fmt.Errorf("channels: %w", err)
			}
			if err = repo.CreateVideos(ctx, seed.Videos); err != nil {
				return fmt.Errorf("videos: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d channels, %d videos\n", len(seed.Channels), len(seed.Videos))
			return nil
		},
	}
}
