package presto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/prestoql/pkg/core"
)

func TestConnectArgs(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantCatalog string
		wantSchema  string
		wantErr     bool
	}{
		{
			name:        "catalog only",
			url:         "presto://user@localhost:8080/catalog1",
			wantCatalog: "catalog1",
			wantSchema:  "",
		},
		{
			name:        "catalog and schema",
			url:         "presto://user@localhost:8080/catalog1/schema1",
			wantCatalog: "catalog1",
			wantSchema:  "schema1",
		},
		{
			name:    "too many path segments",
			url:     "presto://user@localhost:8080/a/b/c",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ConnectArgs(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, "a/b/c", cfgErr.Database, "error must carry the offending path")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "presto", cfg.Type)
			assert.Equal(t, "localhost", cfg.Host)
			assert.Equal(t, 8080, cfg.Port)
			assert.Equal(t, "user", cfg.Username)
			assert.Equal(t, tt.wantCatalog, cfg.Catalog)
			assert.Equal(t, tt.wantSchema, cfg.Schema)
		})
	}
}

func TestConnectArgs_QueryParamsMergedVerbatim(t *testing.T) {
	cfg, err := ConnectArgs("presto://alice@coordinator:8080/hive/default?source=prestoql&session_properties=query_max_run_time%3A5m")
	require.NoError(t, err)

	assert.Equal(t, "prestoql", cfg.Options["source"])
	assert.Equal(t, "query_max_run_time:5m", cfg.Options["session_properties"])
	assert.Equal(t, "hive", cfg.Catalog)
	assert.Equal(t, "default", cfg.Schema)
}

func TestConnectArgs_NoPort(t *testing.T) {
	cfg, err := ConnectArgs("presto://user@coordinator/hive")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Port)
	assert.Equal(t, "coordinator", cfg.Host)
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Database: "a/b/c"}
	assert.Contains(t, err.Error(), `"a/b/c"`)
}

func TestDSN(t *testing.T) {
	cfg, err := ConnectArgs("presto://alice@coordinator:9090/hive/sales")
	require.NoError(t, err)

	dsn := DSN(cfg)
	assert.Contains(t, dsn, "http://alice@coordinator:9090")
	assert.Contains(t, dsn, "catalog=hive")
	assert.Contains(t, dsn, "schema=sales")
}

func adapterConfigWith(t *testing.T, url string) core.AdapterConfig {
	t.Helper()
	cfg, err := ConnectArgs(url)
	require.NoError(t, err)
	return cfg
}

func TestDSN_Defaults(t *testing.T) {
	dsn := DSN(adapterConfigWith(t, "presto://user@h/c"))
	assert.Contains(t, dsn, "h:8080", "port defaults to the coordinator default")

	httpsDSN := DSN(adapterConfigWith(t, "presto://user@h:443/c?scheme=https"))
	assert.Contains(t, httpsDSN, "https://")
	assert.NotContains(t, httpsDSN, "scheme=", "transport scheme is not a session option")
}
