package remote

import "fmt"

// Config selects the bucket and credentials for the S3 object client. An
// empty Endpoint uses AWS proper; a custom endpoint (MinIO and friends)
// switches the client to path-style addressing.
type Config struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Endpoint  string `mapstructure:"endpoint"`
}

func (c *Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket required")
	}
	if c.Region == "" {
		return fmt.Errorf("region required")
	}
	if (c.AccessKey == "") != (c.SecretKey == "") {
		return fmt.Errorf("access_key and secret_key must be set together")
	}
	return nil
}
