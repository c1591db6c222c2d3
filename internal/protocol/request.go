package protocol

import (
	"bytes"
	"errors"
	"strings"
)

// 解析上限：方法与路径（含查询串）的最大字节数，超出部分截断而不拒绝
const (
	DefaultMaxMethodLen = 16
	DefaultMaxPathLen   = 256
)

// ErrMalformedRequestLine：首行缺少 CRLF 或两个空格分隔符
var ErrMalformedRequestLine = errors.New("malformed request line")

// Request：解析后的请求行
// 背景：仅消费首个 CRLF 之前的内容（方法、路径、查询串），其后的头部与正文字节一律忽略；构造后不再修改
// 约束：RawQuery 仅在 HasQuery 为真时有意义；Path 不做百分号解码，路由按原始字节匹配
type Request struct {
	Method   string
	Path     string
	RawQuery string
	HasQuery bool
}

// ParseRequest：从原始读取缓冲区解析请求行
// 背景：先定位首个 CRLF 取出请求行，再按前两个空格切出方法与请求目标；目标在截断之后才按首个 '?' 切分
// 约束：过长路径可能连同查询串一起被截掉；协议版本字段不校验；找不到 CRLF 或空格即判定畸形
func ParseRequest(buf []byte, maxMethod, maxPath int) (Request, error) {
	end := bytes.Index(buf, []byte("\r\n"))
	if end < 0 {
		return Request{}, ErrMalformedRequestLine
	}
	line := string(buf[:end])

	sp1 := strings.IndexByte(line, ' ')
	if sp1 < 0 {
		return Request{}, ErrMalformedRequestLine
	}
	method := line[:sp1]
	if maxMethod >= 0 && len(method) > maxMethod {
		method = method[:maxMethod]
	}

	rest := line[sp1+1:]
	sp2 := strings.IndexByte(rest, ' ')
	if sp2 < 0 {
		return Request{}, ErrMalformedRequestLine
	}
	target := rest[:sp2]
	if maxPath >= 0 && len(target) > maxPath {
		target = target[:maxPath]
	}

	req := Request{Method: method, Path: target}
	if q := strings.IndexByte(target, '?'); q >= 0 {
		req.Path = target[:q]
		req.RawQuery = target[q+1:]
		req.HasQuery = true
	}
	return req, nil
}
