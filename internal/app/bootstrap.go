package app

import (
	"errors"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/logger"
	"github.com/shopfront/internal/provider"
	"github.com/shopfront/internal/router"
	"github.com/shopfront/internal/worker"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	switch mode {
	case ModeAll, ModeAPI, ModeWorker:
	default:
		return nil, errors.New("unknown run mode: " + mode)
	}

	container := provider.NewContainer(cfg)

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		httpService := NewHTTPService(addr, engine)
		services = append(services, httpService)
	}

	// 初始化 Worker 服务，all 模式下队列未启用时只跑 API
	if mode == ModeAll || mode == ModeWorker {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		switch {
		case errors.Is(err, worker.ErrQueueDisabled) && mode == ModeAll:
			logger.Warnw("worker_skipped", "reason", "queue_disabled")
		case err != nil:
			container.Close()
			return nil, err
		default:
			services = append(services, workerService)
		}
	}

	if len(services) == 0 {
		container.Close()
		return nil, errors.New("no services initialized (check mode and config)")
	}

	runner := NewRunner(services...)
	runner.OnStop(container.Close)
	return runner, nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	addr := opts.Config.Server.Host + ":" + opts.Config.Server.Port
	opts.Logger.Infow("app_start", "addr", addr, "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
