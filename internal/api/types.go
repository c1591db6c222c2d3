package api

import (
	"encoding/json"
	"strconv"

	"weather-api/internal/protocol"
)

const contentTypeJSON = "application/json"

// 文档注释：对外序列化模型
// 背景：字段顺序即线上字节顺序，坐标与温度使用定精度浮点；新增字段需评估客户端兼容性
type geoResult struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Lat     fixed4 `json:"lat"`
	Lon     fixed4 `json:"lon"`
}

type weatherResult struct {
	TempC       fixed1 `json:"tempC"`
	Description string `json:"description"`
	UpdatedAt   string `json:"updatedAt"`
}

// apiError：统一错误载荷，形如 {"error":{"code":404,"message":"not found"}}
type apiError struct {
	Error apiErrorBody `json:"error"`
}

type apiErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fixed4 / fixed1：固定小数位数的浮点 JSON 形态
// 背景：encoding/json 默认输出最短表示（55.6050 会变成 55.605，7.0 会变成 7），此处固定位数保持线上字节稳定
type fixed4 float64

func (v fixed4) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(v), 'f', 4, 64), nil
}

type fixed1 float64

func (v fixed1) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(v), 'f', 1, 64), nil
}

// errorResponse：构造结构化错误响应
// 背景：每次调用构造全新载荷，无共享缓冲；响应状态码与载荷内 code 恒相等
func errorResponse(code int, message string) protocol.Response {
	b, _ := json.Marshal(apiError{Error: apiErrorBody{Code: code, Message: message}})
	return protocol.Response{
		StatusCode:  code,
		StatusText:  protocol.StatusText(code),
		ContentType: contentTypeJSON,
		Body:        b,
	}
}

// jsonResponse：构造 200 JSON 响应
func jsonResponse(v any) protocol.Response {
	b, _ := json.Marshal(v)
	return protocol.Response{
		StatusCode:  200,
		StatusText:  protocol.StatusText(200),
		ContentType: contentTypeJSON,
		Body:        b,
	}
}
