package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "zero support", mutate: func(c *Config) { c.MinSupport = 0 }, wantErr: "min support"},
		{name: "support above one", mutate: func(c *Config) { c.MinSupport = 1.5 }, wantErr: "min support"},
		{name: "unknown metric", mutate: func(c *Config) { c.Metric = "jaccard" }, wantErr: "unknown metric"},
		{name: "confidence above one", mutate: func(c *Config) { c.MinThreshold = 1.2 }, wantErr: "min threshold"},
		{name: "lift may exceed one", mutate: func(c *Config) { c.Metric = MetricLift; c.MinThreshold = 1.2 }},
		{name: "negative top n", mutate: func(c *Config) { c.TopN = -1 }, wantErr: "top n"},
		{name: "negative item count", mutate: func(c *Config) { c.MinItemCount = -1 }, wantErr: "min item count"},
		{name: "negative max len", mutate: func(c *Config) { c.MaxLen = -1 }, wantErr: "max len"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, IsInvalidConfig(err))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "United Kingdom", cfg.Country)
	assert.Equal(t, 5, cfg.MinItemCount)
	assert.Equal(t, 0.02, cfg.MinSupport)
	assert.Equal(t, MetricConfidence, cfg.Metric)
	assert.Equal(t, 0.2, cfg.MinThreshold)
	assert.Equal(t, 5, cfg.TopN)
}

func TestDomainError_Wrapping(t *testing.T) {
	cause := errors.New("bare quote")
	err := fmt.Errorf("node ingest.csv: %w", NewParseError("line 3", cause))

	assert.True(t, IsParseError(err))
	assert.False(t, IsInvalidInput(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "node ingest.csv: line 3: bare quote", err.Error())

	domainErr := GetDomainError(err)
	require.NotNil(t, domainErr)
	assert.Equal(t, ModuleIngest, domainErr.Module)

	assert.True(t, IsInvalidInput(fmt.Errorf("upload: %w", ErrMissingFile)))
	assert.True(t, IsStoreNotFound(ErrStoreNotFound))
	assert.False(t, IsDomainError(cause))
	assert.Nil(t, GetDomainError(nil))
}

func TestRun_Result(t *testing.T) {
	run := NewRun(strings.NewReader(""))
	assert.Equal(t, StatusOK, run.Status)
	assert.False(t, run.Done())

	run.Recommendations = []Recommendation{{Rule: "A -> B", Confidence: 0.5}}
	res := run.Result()
	assert.Equal(t, StatusOK, res.Status)
	assert.Len(t, res.Recommendations, 1)

	run.Status = StatusNoRules
	assert.True(t, run.Done())
	res = run.Result()
	assert.Equal(t, StatusNoRules, res.Status)
	assert.Empty(t, res.Recommendations)
	assert.NotNil(t, res.Recommendations)
}

func TestAssociationRule_Text(t *testing.T) {
	r := AssociationRule{Antecedents: []string{"A", "B"}, Consequents: []string{"C"}}
	assert.Equal(t, "A, B -> C", r.Text())
}

func TestBasket_Helpers(t *testing.T) {
	var nilBasket *Basket
	assert.True(t, nilBasket.Empty())
	assert.False(t, nilBasket.Has("1", "A"))

	b := NewBasket()
	assert.True(t, b.Empty())

	b.Invoices = []string{"1", "2"}
	b.Items = []string{"A"}
	b.Present["1"] = map[string]bool{"A": true}
	b.Present["2"] = map[string]bool{}
	assert.False(t, b.Empty())
	assert.True(t, b.Has("1", "A"))
	assert.False(t, b.Has("2", "A"))
	assert.Equal(t, 1, b.ItemCount("A"))
}
