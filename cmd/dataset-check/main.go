package main

import (
	"fmt"
	"os"
	"path/filepath"
	"weather-api/internal/dataset"
	"weather-api/internal/logger"

	"github.com/joho/godotenv"
)

// 文档注释：数据集校验工具
// 背景：部署前检查 TOML 城市表是否可被服务加载，打印记录摘要；路径取首个命令行参数，缺省时与服务同源（DATASET_PATH 或默认路径）。
// 约束：只读校验，不修改文件；校验规则与服务启动时一致。
func main() {
	_ = godotenv.Load(".env")
	l := logger.Setup()

	path := os.Getenv("DATASET_PATH")
	if path == "" {
		path = filepath.Join("data", "cities.toml")
	}
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	ds, err := dataset.Load(path)
	if err != nil {
		l.Error("dataset_invalid", "path", path, "err", err)
		os.Exit(1)
	}
	l.Info("dataset_ok", "path", path, "cities", ds.Len())
	for _, c := range ds.Locations() {
		fmt.Printf("%-16s %s  %9.4f %9.4f\n", c.City, c.Country, c.Lat, c.Lon)
	}
}
