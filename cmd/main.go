// 程序入口：仅负责读取配置、初始化依赖并启动接入层；端点注册在 internal/api 以便扩展
package main

import (
	"net/http"
	"os"
	"path/filepath"
	"weather-api/internal/api"
	"weather-api/internal/dataset"
	"weather-api/internal/logger"
	"weather-api/internal/metrics"
	"weather-api/internal/server"
	"weather-api/internal/version"
	"weather-api/pkg/opsguard"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join("data", "env", ".env"))
	// 日志初始化
	l := logger.Setup()
	l.Debug("log_init_ok")
	l.Info("starting", "commit", version.Commit)

	// 数据集：优先外部 TOML 文件，缺失时回退内置表
	dsPath := os.Getenv("DATASET_PATH")
	if dsPath == "" {
		dsPath = filepath.Join("data", "cities.toml")
	}
	l.Debug("config_dataset_path", "path", dsPath)
	var ds *dataset.Dataset
	if _, err := os.Stat(dsPath); err == nil {
		ds, err = dataset.Load(dsPath)
		if err != nil {
			l.Error("dataset_load_error", "path", dsPath, "err", err)
			os.Exit(1)
		}
		l.Info("dataset_loaded", "path", dsPath, "cities", ds.Len())
	} else {
		ds = dataset.Default()
		l.Info("dataset_builtin", "cities", ds.Len())
	}

	// 运维监听器：/metrics 走独立地址与 net/http，不与业务端口的原始协议混跑
	metricsAddr := os.Getenv("METRICS_ADDR")
	if metricsAddr == "" {
		l.Info("metrics_disabled")
	} else {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		handler := logger.AccessMiddleware(l)(mux)
		handler = opsguard.NewFromEnv(l).Wrap(handler)
		go func() {
			l.Info("metrics_listening", "addr", metricsAddr)
			if err := http.ListenAndServe(metricsAddr, handler); err != nil {
				l.Error("metrics_listen_error", "err", err)
			}
		}()
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	s := server.New(api.New(ds), l)
	if err := s.ListenAndServe(addr); err != nil {
		l.Error("serve_error", "err", err)
		os.Exit(1)
	}
}
