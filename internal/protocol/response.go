package protocol

import (
	"bytes"
	"fmt"
)

// Response：待序列化的完整响应
// 背景：响应在写出前整体物化，无分块与流式路径；Content-Length 恒等于 Body 的字节数
// 约束：Body 为空（nil 或零长）时长度为 0，头部块结构不变
type Response struct {
	StatusCode  int
	StatusText  string
	ContentType string
	Body        []byte
}

var statusTexts = map[int]string{
	200: "OK",
	204: "No Content",
	400: "Bad Request",
	404: "Not Found",
	405: "Method Not Allowed",
}

// StatusText：状态码对应的原因短语，未收录的状态码回退 "Unknown"
func StatusText(code int) string {
	if t, ok := statusTexts[code]; ok {
		return t
	}
	return "Unknown"
}

// Bytes：序列化为线上字节
// 背景：头部块固定为状态行、Content-Type、Content-Length、三个 CORS 头与 Connection: close，随后空行与正文
// 约束：CORS 头无条件输出且取值固定，不随请求变化；头名、头值与顺序是对外契约的一部分
func (r Response) Bytes() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", r.StatusCode, r.StatusText)
	fmt.Fprintf(&b, "Content-Type: %s\r\n", r.ContentType)
	fmt.Fprintf(&b, "Content-Length: %d\r\n", len(r.Body))
	b.WriteString("Access-Control-Allow-Origin: *\r\n")
	b.WriteString("Access-Control-Allow-Methods: GET, OPTIONS\r\n")
	b.WriteString("Access-Control-Allow-Headers: Content-Type\r\n")
	b.WriteString("Connection: close\r\n")
	b.WriteString("\r\n")
	b.Write(r.Body)
	return b.Bytes()
}
