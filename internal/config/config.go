package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"5000"`
	Environment string `env:"APP_ENV" envDefault:"production"`

	DBType     string `env:"DBType" envDefault:"sqlite"`
	DSNURL     string `env:"DSN_URL" envDefault:""`
	DBUser     string `env:"DBUser" envDefault:""`
	DBPassword string `env:"DBPassword" envDefault:""`
	DBAddr     string `env:"DBAddr" envDefault:""`
	DBName     string `env:"DBName" envDefault:"bdconsulting"`
	DBPath     string `env:"DBPath" envDefault:"datas/bdconsulting.db"`
	DBPort     string `env:"DBPort" envDefault:"3306"`

	// 初始管理员账号，仅在库中没有管理员时写入
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@brandenburgdata.com"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	JWTSecret            string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTIssuer            string `env:"JWT_ISSUER" envDefault:"bdconsulting"`
	JWTExpirationMinutes int    `env:"JWT_EXPIRATION_MINUTES" envDefault:"1440"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// 对外邮件通知配置，SMTP_USER/SMTP_PASS 为空时禁用邮件
	SMTPHost  string `env:"SMTP_HOST" envDefault:""`
	SMTPPort  string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser  string `env:"SMTP_USER" envDefault:""`
	SMTPPass  string `env:"SMTP_PASS" envDefault:""`
	FromEmail string `env:"FROM_EMAIL" envDefault:""`
	ToEmail   string `env:"TO_EMAIL" envDefault:"hello@brandenburgdata.com"`

	// 前端消费的公开 API 地址
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:""`

	StorageType          string `env:"STORAGE_TYPE" envDefault:"local"`
	StorageLocalDir      string `env:"STORAGE_LOCAL_DIR" envDefault:"datas/uploads"`
	StoragePublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL" envDefault:"/uploads"`

	// S3 兼容存储配置（自定义 endpoint 亦覆盖 R2/MinIO）
	StorageS3Region          string `env:"STORAGE_S3_REGION"`
	StorageS3Bucket          string `env:"STORAGE_S3_BUCKET"`
	StorageS3Prefix          string `env:"STORAGE_S3_PREFIX"`
	StorageS3Endpoint        string `env:"STORAGE_S3_ENDPOINT"`
	StorageS3AccessKeyID     string `env:"STORAGE_S3_ACCESS_KEY_ID"`
	StorageS3SecretAccessKey string `env:"STORAGE_S3_SECRET_ACCESS_KEY"`
	StorageS3SessionToken    string `env:"STORAGE_S3_SESSION_TOKEN"`
	StorageS3ForcePathStyle  bool   `env:"STORAGE_S3_FORCE_PATH_STYLE" envDefault:"false"`
}

func ParseConfig() (Config, error) {
	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.Debugf("%#v\n", Conf)
	return Conf, nil
}
