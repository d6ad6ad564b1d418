package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey             string   `json:"token_sign_key"`
		TokenIssuer              string   `json:"token_issuer"`
		TokenDuration            Duration `json:"token_duration"`
		PasswordCheckLockTimeout Duration `json:"password_check_lock_timeout"`
		BacklogLimit             int      `json:"backlog_limit"`
		BcryptCost               int      `json:"bcrypt_cost"`
		Version                  string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		TLSCertFile    string   `json:"tls_cert_file"`
		TLSKeyFile     string   `json:"tls_key_file"`
	} `json:"server,omitempty"`

	Hub struct {
		SubscriberBuffer int      `json:"subscriber_buffer"`
		SSERetry         Duration `json:"sse_retry"`
	} `json:"hub,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:             jsonCfg.App.TokenSignKey,
			TokenIssuer:              jsonCfg.App.TokenIssuer,
			TokenDuration:            time.Duration(jsonCfg.App.TokenDuration),
			PasswordCheckLockTimeout: time.Duration(jsonCfg.App.PasswordCheckLockTimeout),
			BacklogLimit:             jsonCfg.App.BacklogLimit,
			BcryptCost:               jsonCfg.App.BcryptCost,
			Version:                  jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			TLSCertFile:    jsonCfg.Server.TLSCertFile,
			TLSKeyFile:     jsonCfg.Server.TLSKeyFile,
		},
		Hub: Hub{
			SubscriberBuffer: jsonCfg.Hub.SubscriberBuffer,
			SSERetry:         time.Duration(jsonCfg.Hub.SSERetry),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
