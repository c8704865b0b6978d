package config

const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

type StorageConfig struct {
	Driver        string
	UploadDir     string
	PublicBaseURL string
	Region        string
	Bucket        string
	Endpoint      string
}

func LoadStorageConfig() StorageConfig {
	return StorageConfig{
		Driver:        GetEnv("STORAGE_DRIVER", StorageLocal),
		UploadDir:     GetEnv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: GetEnv("PUBLIC_BASE_URL", "/uploads"),
		Region:        GetEnv("AWS_REGION", ""),
		Bucket:        GetEnv("AWS_S3_BUCKET", ""),
		Endpoint:      GetEnv("S3_ENDPOINT_URL", ""),
	}
}
