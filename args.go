package main

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bookswap/api"
)

func ParseArgs() Args {
	// server config
	pflag.String("server-url", "0.0.0.0:8080", "")

	// auth config
	pflag.String("auth-secret", "", "")
	pflag.String("auth-issuer", "bookswap", "")
	pflag.Duration("auth-expire", 24*time.Hour, "")

	// db config
	pflag.String("db-user", "", "")
	pflag.String("db-password", "", "")
	pflag.String("db-host", "", "")
	pflag.Int("db-port", 5432, "")
	pflag.String("db-database", "", "")
	pflag.String("db-schema", "public", "")

	// storage config
	pflag.String("storage-backend", "local", "")
	pflag.String("upload-dir", "uploads", "")
	pflag.Int64("max-upload-bytes", 5<<20, "")

	// s3 config
	pflag.String("s3-endpoint", "", "")
	pflag.String("s3-bucket", "", "")
	pflag.String("s3-public-base-url", "", "")
	pflag.String("s3-access-key-id", "", "")
	pflag.String("s3-secret-access-key", "", "")

	// bind pflag to viper
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("BOOKSWAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// initial arguments
	return Args{
		ServerURL: viper.GetString("server-url"),
		ServerConfig: api.ServerConfig{
			Auth: api.AuthConfig{
				Secret:         viper.GetString("auth-secret"),
				Issuer:         viper.GetString("auth-issuer"),
				ExpireDuration: viper.GetDuration("auth-expire"),
			},
			DB: api.DBConfig{
				User:     viper.GetString("db-user"),
				Password: viper.GetString("db-password"),
				Host:     viper.GetString("db-host"),
				Port:     viper.GetInt("db-port"),
				Database: viper.GetString("db-database"),
				Schema:   viper.GetString("db-schema"),
			},
			Storage: api.StorageConfig{
				Backend:        viper.GetString("storage-backend"),
				UploadDir:      viper.GetString("upload-dir"),
				MaxUploadBytes: viper.GetInt64("max-upload-bytes"),
				S3: api.S3Config{
					Endpoint:        viper.GetString("s3-endpoint"),
					Bucket:          viper.GetString("s3-bucket"),
					PublicBaseURL:   viper.GetString("s3-public-base-url"),
					AccessKeyID:     viper.GetString("s3-access-key-id"),
					SecretAccessKey: viper.GetString("s3-secret-access-key"),
				},
			},
		},
	}
}

type Args struct {
	ServerURL    string
	ServerConfig api.ServerConfig
}

func (args Args) Validate() bool {
	return args.ServerURL != "" && args.ServerConfig.Auth.Secret != "" && args.ServerConfig.DB.User != "" && args.ServerConfig.DB.Host != "" && args.ServerConfig.DB.Database != ""
}
