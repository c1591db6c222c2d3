package opsguard

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
)

// 文档注释：运维监听器防护（IP/CIDR 白名单）
// 背景：/metrics 等运维端点只应暴露给抓取器与运维网段；业务端口不经 net/http，不在本包防护范围。
// 约束：
// 1) 不依赖项目内部代码，提供独立包以便在其他项目直接复用；
// 2) 支持 IPv4/IPv6 CIDR；
// 3) 真实来源 IP 以 RemoteAddr 为准；如需识别上游真实 IP，请通过 OPS_REAL_IP_HEADER 指定。
type Guard struct {
	l          *slog.Logger
	enabled    bool
	allowIPs   map[string]struct{}
	allowCIDRs []*net.IPNet
	ipHeader   string
}

// NewFromEnv：按环境变量构建防护器
// 环境变量：
// OPS_GUARD_ENABLE=true                   是否启用防护（默认关闭，直通）
// OPS_ALLOW_IPS=1.2.3.4,5.6.7.8           允许的单 IP 列表（逗号分隔）
// OPS_ALLOW_CIDRS=10.0.0.0/8,...          允许的 CIDR 列表（逗号分隔，支持 v4/v6）
// OPS_ALLOW_LOCAL=false                   是否允许 127.0.0.1/::1（默认允许，便于本地调试）
// OPS_REAL_IP_HEADER=X-Forwarded-For      指定上游真实 IP 头（首个有效 IP 生效）
func NewFromEnv(l *slog.Logger) *Guard {
	g := &Guard{
		l:        l,
		enabled:  os.Getenv("OPS_GUARD_ENABLE") == "true",
		allowIPs: map[string]struct{}{},
		ipHeader: strings.TrimSpace(os.Getenv("OPS_REAL_IP_HEADER")),
	}
	if s := os.Getenv("OPS_ALLOW_IPS"); s != "" {
		for _, p := range strings.Split(s, ",") {
			if ip := net.ParseIP(strings.TrimSpace(p)); ip != nil {
				g.allowIPs[ip.String()] = struct{}{}
			}
		}
	}
	if s := os.Getenv("OPS_ALLOW_CIDRS"); s != "" {
		for _, p := range strings.Split(s, ",") {
			if _, cidr, err := net.ParseCIDR(strings.TrimSpace(p)); err == nil {
				g.allowCIDRs = append(g.allowCIDRs, cidr)
			} else {
				l.Warn("opsguard_bad_cidr", "cidr", p, "err", err)
			}
		}
	}
	if os.Getenv("OPS_ALLOW_LOCAL") != "false" {
		g.allowIPs["127.0.0.1"] = struct{}{}
		g.allowIPs["::1"] = struct{}{}
	}
	return g
}

// Wrap：包装下游处理器，未启用时直通
func (g *Guard) Wrap(next http.Handler) http.Handler {
	if !g.enabled {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := g.clientIP(r)
		if !g.allowed(ip) {
			g.l.Warn("opsguard_denied", "ip", ip, "path", r.URL.Path)
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP：提取来源 IP
// 约束：默认取 RemoteAddr；配置了真实 IP 头时取头部首个可解析的 IP
func (g *Guard) clientIP(r *http.Request) string {
	if g.ipHeader != "" {
		for _, p := range strings.Split(r.Header.Get(g.ipHeader), ",") {
			if ip := net.ParseIP(strings.TrimSpace(p)); ip != nil {
				return ip.String()
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (g *Guard) allowed(s string) bool {
	ip := net.ParseIP(s)
	if ip == nil {
		return false
	}
	if _, ok := g.allowIPs[ip.String()]; ok {
		return true
	}
	for _, cidr := range g.allowCIDRs {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}
