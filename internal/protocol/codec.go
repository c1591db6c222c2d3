// 包 protocol：面向原始字节的 HTTP/1.1 协议层——请求行解析、查询串编解码与响应序列化；不依赖 net/http
package protocol

import "strings"

// DecodePercentEncoded：对查询串中的值做百分号解码
// 背景：从左到右单遍扫描，%XX 还原为对应字节，'+' 还原为空格，其余字符原样透传；解码产物不做二次扫描
// 约束：非法 % 序列（后随不足两个十六进制位）按字面拷贝而不报错；输出长度恒不大于输入长度
func DecodePercentEncoded(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]):
			b.WriteByte(hexValue(s[i+1])<<4 | hexValue(s[i+2]))
			i += 2
		case c == '+':
			b.WriteByte(' ')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// QueryParam：按键从查询串中取出解码后的值
// 背景：按 '&' 切成键值对，每对在首个 '=' 处切分；键做大小写敏感的精确比较且不参与解码，首个命中生效，重复键不合并
// 约束：原始值先按 maxLen 截断再解码（截断不拒绝，需要拒绝语义的调用方自行校验长度；maxLen 为负时不截断）；
// 无 '=' 的对被跳过；空查询串视为未命中；带 '=' 的空值视为命中
func QueryParam(query, key string, maxLen int) (string, bool) {
	for query != "" {
		var pair string
		if i := strings.IndexByte(query, '&'); i >= 0 {
			pair, query = query[:i], query[i+1:]
		} else {
			pair, query = query, ""
		}
		eq := strings.IndexByte(pair, '=')
		if eq < 0 || pair[:eq] != key {
			continue
		}
		raw := pair[eq+1:]
		if maxLen >= 0 && len(raw) > maxLen {
			raw = raw[:maxLen]
		}
		return DecodePercentEncoded(raw), true
	}
	return "", false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
