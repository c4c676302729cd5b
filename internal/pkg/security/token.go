package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// ApiTokenBytes 令牌随机字节数 对应 32 位十六进制字符串
const ApiTokenBytes = 16

// NewApiToken 生成随机不透明令牌 作为 Bearer 凭据使用
// 碰撞概率可忽略 签发时不做查重
func NewApiToken() (string, error) {
	buf := make([]byte, ApiTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate api token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ParseBearer 从 Authorization 头中提取 Bearer 令牌
func ParseBearer(authorization string) (string, bool) {
	if authorization == "" || !strings.HasPrefix(authorization, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authorization, "Bearer "), true
}
