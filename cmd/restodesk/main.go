package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/talkincode/restodesk/config"
	"github.com/talkincode/restodesk/internal/adminapi"
	"github.com/talkincode/restodesk/internal/app"
	"github.com/talkincode/restodesk/internal/webserver"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "restodesk",
		Short:         "Restaurant back-office dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "restodesk.yml", "Config file path (YAML)")

	cmd.AddCommand(serveCmd(&configPath))
	cmd.AddCommand(snapshotCmd(&configPath))
	cmd.AddCommand(exportReceiptCmd(&configPath))
	cmd.AddCommand(resetCmd(&configPath))
	return cmd
}

// startApp loads the configuration and initializes the application.
func startApp(configPath string) (*app.Application, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	application := app.NewApplication(cfg)
	application.Init(cfg)
	return application, nil
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the admin API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := startApp(*configPath)
			if err != nil {
				return err
			}
			defer application.Release()

			webserver.Init(application)
			adminapi.Init()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := webserver.Start(ctx); err != nil {
				return err
			}
			zap.L().Info("shutdown complete", zap.String("namespace", "app"))
			return nil
		},
	}
}

func snapshotCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print the current restaurant state as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := startApp(*configPath)
			if err != nil {
				return err
			}
			defer application.Release()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(application.Store().State())
		},
	}
}

func exportReceiptCmd(configPath *string) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export-receipt <id>",
		Short: "Write a receipt as a standalone JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := startApp(*configPath)
			if err != nil {
				return err
			}
			defer application.Release()

			receipt, found := application.Store().State().FindReceipt(args[0])
			if !found {
				return errors.Errorf("receipt %s not found", args[0])
			}
			data, err := json.MarshalIndent(receipt, "", "  ")
			if err != nil {
				return errors.Wrap(err, "encode receipt")
			}
			path := filepath.Join(outDir, adminapi.ExportFilename(receipt))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return errors.Wrapf(err, "write %s", path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}

func resetCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Wipe stored data and reload the demo dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := startApp(*configPath)
			if err != nil {
				return err
			}
			defer application.Release()
			return application.ResetData(cmd.Context())
		},
	}
}
