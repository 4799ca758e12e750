package config

type OssConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Region   string `json:"region" yaml:"region"`
	Bucket   string `json:"bucket" yaml:"bucket"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}

// Enabled 未配置 bucket 时上传功能降级关闭
func (o *OssConfig) Enabled() bool {
	return o != nil && o.Bucket != ""
}
