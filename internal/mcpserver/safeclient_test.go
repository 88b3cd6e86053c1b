package mcpserver

import (
	"context"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlockedIP(t *testing.T) {
	tests := []struct {
		ip      string
		blocked bool
	}{
		{"127.0.0.1", true},      // loopback
		{"10.0.0.1", true},       // private (Class A)
		{"172.16.0.1", true},     // private (Class B)
		{"192.168.1.1", true},    // private (Class C)
		{"169.254.1.1", true},    // link-local
		{"::1", true},            // IPv6 loopback
		{"0.0.0.0", true},        // unspecified IPv4
		{"::", true},             // unspecified IPv6
		{"fe80::1", true},        // IPv6 link-local
		{"fd00::1", true},        // IPv6 ULA (private)
		{"8.8.8.8", false},       // public
		{"1.1.1.1", false},       // public
		{"93.184.216.34", false}, // public
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip, "failed to parse IP: %s", tt.ip)
			assert.Equal(t, tt.blocked, isBlockedIP(ip))
		})
	}
}

func TestLookupPublic_IPLiterals(t *testing.T) {
	_, err := lookupPublic(context.Background(), net.DefaultResolver, "127.0.0.1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request")

	ips, err := lookupPublic(context.Background(), net.DefaultResolver, "8.8.8.8")
	require.NoError(t, err)
	require.Len(t, ips, 1)
	assert.Equal(t, "8.8.8.8", ips[0].IP.String())
}

func TestNewSafeHTTPClient(t *testing.T) {
	client := newSafeHTTPClient()
	require.NotNil(t, client)
	assert.Equal(t, fetchTimeout, client.Timeout)
	assert.NotNil(t, client.CheckRedirect)
	assert.NotNil(t, client.Transport)
}

func TestNewSafeHTTPClient_RedirectChecks(t *testing.T) {
	client := newSafeHTTPClient()

	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:5001/http-api.md", nil)
	require.NoError(t, err)
	err = client.CheckRedirect(req, []*http.Request{req})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request")

	via := make([]*http.Request, maxRedirects)
	err = client.CheckRedirect(req, via)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stopped after")
}
