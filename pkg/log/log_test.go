package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestKeepInDevelopment(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{key: "correlation_id", expected: true},
		{key: "category", expected: true},
		{key: "subject_id", expected: true},
		{key: "store_code", expected: true},
		{key: "user_id", expected: true},
		{key: "linhas", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, keepInDevelopment(tt.key))
		})
	}
}
