package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/namada-indexer/internal/domain"
)

func TestLoadIndexerConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *IndexerConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
start_height: 100
start_heights:
  governance: 250
skip_malformed_blocks: true
database:
  url: "postgres://indexer:secret@db:5432/namada?sslmode=disable"
chain:
  rpc_url: "http://localhost:26657"
  initial_query_retry_time: "2s"
  max_query_retry_time: "1m"
  query_retry_budget: "5m"
  tip_poll_interval: "500ms"
  requests_per_second: 20
cache:
  url: "redis://localhost:6379/0"
  ttl: "1m"
  worker:
    pool_size: 8
    queue_size: 64
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
server:
  port: 9191
`,
			validate: func(t *testing.T, cfg *IndexerConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, uint64(100), cfg.StartHeight)
				assert.Equal(t, uint64(250), cfg.StartHeightFor(domain.DomainGovernance))
				assert.Equal(t, uint64(100), cfg.StartHeightFor(domain.DomainPoS))
				assert.True(t, cfg.SkipMalformedBlocks)
				assert.Equal(t, "postgres://indexer:secret@db:5432/namada?sslmode=disable", cfg.Database.DSN())
				assert.Equal(t, "http://localhost:26657", cfg.Chain.RPCURL)
				assert.Equal(t, 2*time.Second, cfg.Chain.InitialQueryRetryTime)
				assert.Equal(t, time.Minute, cfg.Chain.MaxQueryRetryTime)
				assert.Equal(t, 5*time.Minute, cfg.Chain.QueryRetryBudget)
				assert.Equal(t, 500*time.Millisecond, cfg.Chain.TipPollInterval)
				assert.Equal(t, float64(20), cfg.Chain.RequestsPerSecond)
				assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.URL)
				assert.Equal(t, time.Minute, cfg.Cache.TTL)
				assert.Equal(t, 8, cfg.Cache.Worker.WorkerPoolSize)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, 9191, cfg.Server.Port)
				require.NoError(t, cfg.Validate())
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
chain:
  rpc_url: "http://localhost:26657"
`,
			validate: func(t *testing.T, cfg *IndexerConfig) {
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable", cfg.Database.DSN())
				assert.Equal(t, uint64(1), cfg.StartHeight)
				assert.False(t, cfg.SkipMalformedBlocks)
				assert.False(t, cfg.ExitOnHalt)
				assert.Equal(t, 10, cfg.Chain.MissingHeightRetries)
				assert.Equal(t, 1024, cfg.NATS.QueueSize)
				assert.Equal(t, time.Second, cfg.Chain.InitialQueryRetryTime)
				assert.Equal(t, 30*time.Second, cfg.Chain.MaxQueryRetryTime)
				assert.Equal(t, 2*time.Minute, cfg.Chain.QueryRetryBudget)
				assert.Equal(t, time.Second, cfg.Chain.TipPollInterval)
				assert.Equal(t, "", cfg.Cache.URL)
				assert.Equal(t, "indexer", cfg.NATS.SubjectPrefix)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
				require.NoError(t, cfg.Validate())
			},
		},
		{
			name:       "missing config file",
			configFile: "",
			validate: func(t *testing.T, cfg *IndexerConfig) {
				assert.Error(t, cfg.Validate())
			},
		},
		{
			name: "invalid yaml",
			configFile: `
				database:
				  host: localhost
				  port: invalid
			`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadIndexerConfig("governance", configFile, tmpDir)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestIndexerConfigValidate(t *testing.T) {
	base := func() IndexerConfig {
		return IndexerConfig{
			StartHeight: 1,
			Chain: ChainConfig{
				RPCURL:                "http://localhost:26657",
				InitialQueryRetryTime: time.Second,
				MaxQueryRetryTime:     time.Minute,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*IndexerConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(*IndexerConfig) {}},
		{name: "missing rpc url", mutate: func(c *IndexerConfig) { c.Chain.RPCURL = "" }, wantErr: "chain.rpc_url"},
		{name: "zero start height", mutate: func(c *IndexerConfig) { c.StartHeight = 0 }, wantErr: "start_height"},
		{name: "ceiling below initial", mutate: func(c *IndexerConfig) { c.Chain.MaxQueryRetryTime = time.Millisecond }, wantErr: "max_query_retry_time"},
		{name: "unknown domain override", mutate: func(c *IndexerConfig) { c.StartHeights = map[string]uint64{"ibc": 5} }, wantErr: "unknown domain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadWebserverConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configFile, []byte(`
git_sha: "abc123"
database:
  host: primary
  read_host: replica
  read_port: 6432
  user: reader
  password: pw
  dbname: namada
cache:
  url: "redis://cache:6379/1"
server:
  port: 8088
`), 0600)
	require.NoError(t, err)

	cfg, err := LoadWebserverConfig(configFile, tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.GitSHA)
	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "host=replica port=6432 user=reader password=pw dbname=namada sslmode=disable", cfg.Database.ReadDSN())
	assert.Equal(t, "host=primary port=5432 user=reader password=pw dbname=namada sslmode=disable", cfg.Database.DSN())
}
