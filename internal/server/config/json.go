package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dberzins/snippetflow/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON configuration
// files. Token validity is expressed in minutes. After unmarshalling, set
// fields are copied into the runtime Config.
type JsonConfig struct {
	HTTPAddr              string `json:"http_addr"`
	DatabaseDSN           string `json:"database_dsn"`
	SecretKey             string `json:"secret_key"`
	TokenValidityMinutes  int    `json:"token_validity_minutes"`
	SageMakerEndpointName string `json:"sagemaker_endpoint_name"`
	AWSRegion             string `json:"aws_region"`
	CORSOrigin            string `json:"cors_origin"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flags, if any. Unset fields leave the existing Config values alone.
// An unreadable or invalid file panics: a config file that was asked for but
// cannot be used is a startup error.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.HTTPAddr != "" {
		config.HTTPAddr = c.HTTPAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityMinutes > 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityMinutes) * time.Minute
	}
	if c.SageMakerEndpointName != "" {
		config.SageMakerEndpointName = c.SageMakerEndpointName
	}
	if c.AWSRegion != "" {
		config.AWSRegion = c.AWSRegion
	}
	if c.CORSOrigin != "" {
		config.CORSOrigin = c.CORSOrigin
	}
}
