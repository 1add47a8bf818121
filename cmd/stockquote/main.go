package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"stockquote/config"
	"stockquote/internal/logging"
	"stockquote/internal/stockctl"
	"stockquote/internal/stockd"
)

// Version 构建时通过 -ldflags "-X main.Version=..." 注入
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		cfg        *config.Config
	)

	rootCmd := &cobra.Command{
		Use:           "stockquote",
		Short:         "Normalize Tencent quote records across A-share, HK, US and fund markets",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if configPath == "" {
				if _, err := os.Stat("config.yaml"); err == nil {
					configPath = "config.yaml"
				}
			}
			var err error
			if cfg, err = config.GetConfig(configPath); err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			return logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "配置文件路径(YAML格式)，默认优先使用 ./config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "日志级别 (debug|info|warn|error)")

	var (
		encoding string
		format   string
		noColor  bool
		code     string
	)
	parseCmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse raw qt.gtimg.cn payloads from files or stdin",
		RunE: func(c *cobra.Command, args []string) error {
			opt := stockctl.ParseOptions{
				Paths:    args,
				Encoding: cfg.Input.Encoding,
				Format:   cfg.Output.Format,
				NoColor:  cfg.Output.NoColor,
				Code:     code,
			}
			if c.Flags().Changed("encoding") {
				opt.Encoding = encoding
			}
			if c.Flags().Changed("format") {
				opt.Format = format
			}
			if c.Flags().Changed("no-color") {
				opt.NoColor = noColor
			}
			return stockctl.RunParse(opt, c.InOrStdin(), c.OutOrStdout())
		},
	}
	parseCmd.Flags().StringVar(&encoding, "encoding", "gbk", "输入编码 (gbk|utf8)")
	parseCmd.Flags().StringVarP(&format, "format", "f", "json", "输出格式 (json|table)")
	parseCmd.Flags().BoolVar(&noColor, "no-color", false, "表格输出不使用颜色")
	parseCmd.Flags().StringVar(&code, "code", "", "输入为不带 v_ 包裹的字段串时指定代码，每行一条")

	classifyCmd := &cobra.Command{
		Use:   "classify CODE...",
		Short: "Print the market layout used for each code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return stockctl.RunClassify(args, c.OutOrStdout())
		},
	}

	var port int
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP parse API",
		RunE: func(c *cobra.Command, args []string) error {
			if c.Flags().Changed("port") {
				cfg.Server.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Info().Str("version", Version).Msg("stockquote serve")
			return stockd.Run(ctx, cfg)
		},
	}
	serveCmd.Flags().IntVarP(&port, "port", "p", config.DefaultConfig.Server.Port, "HTTP 端口")

	rootCmd.AddCommand(parseCmd, classifyCmd, serveCmd)
	return rootCmd
}
