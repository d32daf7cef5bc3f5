package infra

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umalmyha/fraudwatch/internal/config"
)

func TestRouterAssembles(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Config{
		ServerCfg:  config.ServerCfg{Port: 3000, ShutdownSeconds: 10},
		StorageCfg: config.StorageCfg{CustomerFile: filepath.Join(dir, "customers.json"), LogFile: filepath.Join(dir, "transaction_log.json")},
		FraudCfg:   config.FraudCfg{TransactionLimit: 5000, MaxCustomers: 15},
		TwilioCfg:  config.TwilioCfg{AccountSid: "AC0", AuthToken: "token", PhoneNumber: "+10000000000"},
		ModelCfg:   config.ModelCfg{File: filepath.Join(dir, "fraud_model.bin")},
	}

	// a missing model file must not prevent the alerting half from starting
	e, err := Router(cfg)
	require.NoError(t, err)
	assert.NotNil(t, e.Validator)
	assert.NotNil(t, e.Renderer)
}
