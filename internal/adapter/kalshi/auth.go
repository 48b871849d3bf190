package kalshi

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"
)

// SignRequest 生成 KALSHI-ACCESS-SIGNATURE 头的值：
// 对 timestamp+method+path 拼接串做 RSA-PSS(SHA256) 签名后 base64。
// path 只取 query 之前的部分，签名串里不含查询参数
func SignRequest(privateKeyPEM, timestamp, method, path string) (string, error) {
	path = strings.Split(path, "?")[0]
	message := timestamp + method + path

	key, err := parsePrivateKey(privateKeyPEM)
	if err != nil {
		return "", err
	}

	hashed := sha256.Sum256([]byte(message))
	signature, err := rsa.SignPSS(rand.Reader, key, crypto.SHA256, hashed[:], &rsa.PSSOptions{
		SaltLength: rsa.PSSSaltLengthEqualsHash,
	})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// parsePrivateKey 解析 PEM 私钥。平台下发的历史格式不统一，
// 先按 PKCS#1 解，失败再按 PKCS#8 解
func parsePrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(privateKeyPEM))
	if block == nil {
		return nil, fmt.Errorf("无法解析 PEM 私钥")
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("解析私钥失败: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("私钥类型不是 RSA")
	}
	return key, nil
}
