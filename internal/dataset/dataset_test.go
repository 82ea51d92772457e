package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdapval/conformance/internal/dataset"
)

func TestLoad(t *testing.T) {
	svc, err := dataset.Load()
	require.NoError(t, err)

	roid, ok := svc.Get(dataset.EPPROID)
	require.True(t, ok)
	assert.False(t, roid.IsInvalid("VRSN"))
	assert.True(t, roid.IsInvalid("BADROID"))

	ipv4, ok := svc.Get(dataset.IPv4SpecialPurpose)
	require.True(t, ok)
	assert.True(t, ipv4.IsInvalid("192.168.1.1"))
	assert.False(t, ipv4.IsInvalid("8.8.8.8"))

	ipv6, ok := svc.Get(dataset.IPv6SpecialPurpose)
	require.True(t, ok)
	assert.True(t, ipv6.IsInvalid("::1"))
	assert.False(t, ipv6.IsInvalid("2606:4700:4700::1111"))
}

func TestGetUnknownTable(t *testing.T) {
	svc, err := dataset.Load()
	require.NoError(t, err)

	_, ok := svc.Get("nonsense")
	assert.False(t, ok)
}
