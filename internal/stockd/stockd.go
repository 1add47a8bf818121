package stockd

import (
	"context"

	"github.com/rs/zerolog/log"

	"stockquote/api"
	"stockquote/config"
)

// Run 启动HTTP服务，ctx 取消后优雅退出
func Run(ctx context.Context, cfg *config.Config) error {
	server := api.NewServer(cfg)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	if err := server.Shutdown(context.Background()); err != nil {
		return err
	}
	log.Info().Msg("stopped")
	return <-errCh
}
