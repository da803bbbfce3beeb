package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restyle/internal/codec"
	"restyle/internal/config"
	"restyle/rewrite"
	"restyle/rules"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, config.StringOrArray{config.RulesAll}, cfg.Rules)
	assert.Equal(t, codec.DefaultMaxWidth, cfg.MaxWidth)
	assert.False(t, cfg.FailFast)
	assert.Empty(t, cfg.ExcludeAliases)
}

func TestParseScalarRules(t *testing.T) {
	cfg, err := config.Parse([]byte("rules: alias-sort\n"))
	require.NoError(t, err)

	assert.Equal(t, config.StringOrArray{rules.NameAliasSort}, cfg.Rules)
}

func TestParseRuleList(t *testing.T) {
	src := `
rules:
  - case-to-if
  - number-underscores
exclude-aliases: [Keep, Raw]
max-width: 120
fail-fast: true
`

	cfg, err := config.Parse([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, config.StringOrArray{rules.NameCaseToIf, rules.NameNumberUnderscores}, cfg.Rules)
	assert.Equal(t, 120, cfg.MaxWidth)
	assert.True(t, cfg.FailFast)

	excluded := cfg.ExcludedAliases()
	assert.Contains(t, excluded, "Keep")
	assert.Contains(t, excluded, "Raw")
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := config.Parse([]byte("rules: {oops: 1}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected string or array")
}

func TestRuleListResolvesAll(t *testing.T) {
	cfg := config.Default()

	list, err := cfg.RuleList()
	require.NoError(t, err)
	assert.Len(t, list, len(rules.Default(rules.CategoryAll)))
}

func TestRuleListKeepsOrder(t *testing.T) {
	cfg, err := config.Parse([]byte("rules: [number-underscores, case-to-if]\n"))
	require.NoError(t, err)

	list, err := cfg.RuleList()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, rules.NameNumberUnderscores, list[0].Name())
	assert.Equal(t, rules.NameCaseToIf, list[1].Name())
}

func TestRuleListRejectsUnknown(t *testing.T) {
	cfg, err := config.Parse([]byte("rules: [no-such-rule]\n"))
	require.NoError(t, err)

	_, err = cfg.RuleList()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown rule "no-such-rule"`)
}

func TestFailureMode(t *testing.T) {
	assert.Equal(t, rewrite.ModeLog, config.Default().FailureMode())

	cfg, err := config.Parse([]byte("fail-fast: true\n"))
	require.NoError(t, err)
	assert.Equal(t, rewrite.ModePropagate, cfg.FailureMode())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restyle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: alias-sort\n"), 0644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.StringOrArray{rules.NameAliasSort}, cfg.Rules)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := config.Parse([]byte("rules: [alias-sort, case-to-if]\nexclude-aliases: [Keep]\nmax-width: 80\n"))
	require.NoError(t, err)

	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	again, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
