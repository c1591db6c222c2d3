// 包 server：TCP 接入层，按「接受、单次读取、应答、关闭」的顺序串行处理每个连接
package server

import (
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"

	"weather-api/internal/api"
	"weather-api/internal/metrics"
)

// readBufferSize：单次读取的缓冲区大小；超出的字节连同请求行之外的内容一并忽略
const readBufferSize = 8192

// ConnOutcome：单个连接的终态
type ConnOutcome int

const (
	// OutcomeResponded：已写出完整响应
	OutcomeResponded ConnOutcome = iota
	// OutcomeNoData：首次读取无数据，连接关闭且一个字节也未回写
	OutcomeNoData
)

// ConnResult：单个连接的处理结果，供访问日志与测试断言使用
type ConnResult struct {
	Outcome  ConnOutcome
	Status   int
	Method   string
	Path     string
	BytesIn  int
	BytesOut int
}

// Server：接入层
// 背景：协议模型是严格的一连接一请求，不做 keep-alive、不做流水线；业务逻辑全部委托给 api 层
type Server struct {
	api *api.API
	log *slog.Logger
}

// New：构造接入层
func New(a *api.API, l *slog.Logger) *Server {
	return &Server{api: a, log: l}
}

// ListenAndServe：监听 addr 并进入接受循环
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	s.log.Info("listening", "addr", ln.Addr().String())
	return s.Serve(ln)
}

// Serve：串行接受循环
// 背景：一个连接处理完毕才接受下一个，未接受的连接由内核积压队列排队；接受出错即返回
// 约束：不设读写超时与重试，慢客户端会阻塞整个循环，这是协议模型的一部分
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			s.log.Error("accept_error", "err", err)
			return err
		}
		s.serveConn(conn)
	}
}

// serveConn：处理单个连接直至关闭
// 背景：单次读取后立即应答，不做跨读重组；零字节读（对端关闭或读错误）进入 OutcomeNoData 终态，不回写任何字节
func (s *Server) serveConn(conn net.Conn) ConnResult {
	start := time.Now()
	connID := uuid.New().String()
	metrics.ConnectionsTotal.Inc()
	defer conn.Close()

	buf := make([]byte, readBufferSize)
	n, readErr := conn.Read(buf)
	if n <= 0 {
		metrics.NoResponseTotal.Inc()
		s.log.Debug("conn_no_data",
			"conn_id", connID,
			"remote", conn.RemoteAddr().String(),
			"err", readErr,
		)
		return ConnResult{Outcome: OutcomeNoData}
	}

	resp, req := s.api.Handle(buf[:n])
	written, writeErr := conn.Write(resp.Bytes())
	if writeErr != nil {
		s.log.Debug("conn_write_error", "conn_id", connID, "err", writeErr)
	}

	dur := time.Since(start)
	metrics.ResponsesTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	metrics.RequestDurationMs.Observe(float64(dur.Milliseconds()))
	s.log.Debug("conn_served",
		"conn_id", connID,
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"bytes_in", n,
		"bytes_out", written,
		"duration_ms", dur.Milliseconds(),
		"remote", conn.RemoteAddr().String(),
	)
	return ConnResult{
		Outcome:  OutcomeResponded,
		Status:   resp.StatusCode,
		Method:   req.Method,
		Path:     req.Path,
		BytesIn:  n,
		BytesOut: written,
	}
}
