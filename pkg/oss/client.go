package oss

import (
	"Verity/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// GetOssClient 凭证走环境变量，未配置 bucket 时返回 nil 由上层降级
func GetOssClient(conf *config.Config) *oss.Client {
	if !conf.Oss.Enabled() {
		return nil
	}
	provider := credentials.NewEnvironmentVariableCredentialsProvider()
	cfg := oss.LoadDefaultConfig().WithCredentialsProvider(provider).
		WithEndpoint(conf.Oss.Endpoint).WithRegion(conf.Oss.Region)
	return oss.NewClient(cfg)
}
