// 包 api：请求调度与两个查询端点的业务处理；输入输出均为 protocol 层结构，不触碰网络
package api

import (
	"strings"

	"weather-api/internal/dataset"
	"weather-api/internal/protocol"
)

// handlerFunc：被调度器选中的端点处理函数
type handlerFunc func(protocol.Request) protocol.Response

// route：一条前缀路由表项
type route struct {
	prefix string
	handle handlerFunc
}

// API：路由表与注入依赖的集合
type API struct {
	ds     *dataset.Dataset
	routes []route
}

// New：构造 API 并注册固定路由
// 约束：路由按前缀匹配而非精确匹配（保持既有客户端的线上兼容），表序即匹配序
func New(ds *dataset.Dataset) *API {
	a := &API{ds: ds}
	a.routes = []route{
		{"/api/v1/geo", a.handleGeo},
		{"/api/v1/weather", a.handleWeather},
	}
	return a
}

// Handle：处理一条原始请求缓冲区
// 背景：解析请求行后进入调度，解析失败统一 400；返回解析出的请求行供接入层记录访问日志
func (a *API) Handle(buf []byte) (protocol.Response, protocol.Request) {
	req, err := protocol.ParseRequest(buf, protocol.DefaultMaxMethodLen, protocol.DefaultMaxPathLen)
	if err != nil {
		return errorResponse(400, "invalid request line"), protocol.Request{}
	}
	return a.dispatch(req), req
}

// dispatch：方法检查与前缀路由
// 背景：OPTIONS 预检先于一切路径判断，固定应答 204 空体；随后仅放行 GET；未命中路由返回 404
func (a *API) dispatch(req protocol.Request) protocol.Response {
	if req.Method == "OPTIONS" {
		return protocol.Response{
			StatusCode:  204,
			StatusText:  protocol.StatusText(204),
			ContentType: "text/plain",
		}
	}
	if req.Method != "GET" {
		return errorResponse(405, "method not allowed")
	}
	for _, r := range a.routes {
		if strings.HasPrefix(req.Path, r.prefix) {
			return r.handle(req)
		}
	}
	return errorResponse(404, "not found")
}
