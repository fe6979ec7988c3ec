package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := UUID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestSetNode(t *testing.T) {
	require.Error(t, SetNode(4096))
	require.NoError(t, SetNode(7))
	assert.NotEmpty(t, UUID())
}

func TestReceiptNumber(t *testing.T) {
	assert.Equal(t, "RCP-001", ReceiptNumber(1))
	assert.Equal(t, "RCP-1234", ReceiptNumber(1234))
}

func TestNextReceiptNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty", nil, "RCP-001"},
		{"sequential", []string{"RCP-002", "RCP-001"}, "RCP-003"},
		{"gap above count", []string{"RCP-002"}, "RCP-003"},
		{"foreign codes", []string{"INV-9", "RCP-x"}, "RCP-003"},
		{"large", []string{"RCP-1234"}, "RCP-1235"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextReceiptNumber(tt.existing))
		})
	}

	n, ok := ParseReceiptNumber("RCP-042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)
	_, ok = ParseReceiptNumber("042")
	assert.False(t, ok)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 64.94, Round2(45.97+18.97))
	assert.Equal(t, 3.68, Round2(45.97*0.08))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("John Smith", "smi"))
	assert.True(t, ContainsFold("RCP-001", ""))
	assert.False(t, ContainsFold("Sarah", "john"))
}
