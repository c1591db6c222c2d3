package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ConnectionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "weatherapi_connections_total",
		Help: "Total number of accepted connections",
	})
	ResponsesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "weatherapi_responses_total",
		Help: "Total responses written, by status code",
	}, []string{"status"})
	NoResponseTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "weatherapi_no_response_total",
		Help: "Total connections closed without a response (empty read)",
	})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "weatherapi_request_duration_ms",
		Help:    "Connection handling duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
)

func init() {
	prometheus.MustRegister(ConnectionsTotal)
	prometheus.MustRegister(ResponsesTotal)
	prometheus.MustRegister(NoResponseTotal)
	prometheus.MustRegister(RequestDurationMs)
}

// 文档注释：返回 Prometheus 指标监听器
// 背景：统一暴露注册指标到 /metrics 路径，供 Prometheus 抓取；在主入口挂载到独立的运维地址。
func Handler() http.Handler { return promhttp.Handler() }
