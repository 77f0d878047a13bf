package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetworkAddress_Set проверяет разбор адреса сервера
func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    NetworkAddress
		wantErr bool
	}{
		{
			name:  "Valid address",
			value: "localhost:9090",
			want:  NetworkAddress{Host: "localhost", Port: 9090},
		},
		{
			name:  "Empty host",
			value: ":8080",
			want:  NetworkAddress{Host: "", Port: 8080},
		},
		{
			name:    "Missing port",
			value:   "localhost",
			wantErr: true,
		},
		{
			name:    "Port is not a number",
			value:   "localhost:abc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var addr NetworkAddress

			// Act
			err := addr.Set(tt.value)

			// Assert
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.value, addr.String())
		})
	}
}

// TestURLPrefix_Set проверяет разбор базового URL
func TestURLPrefix_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{
			name:  "Valid prefix",
			value: "http://localhost:8080",
			want:  "http://localhost:8080",
		},
		{
			name:  "Trailing slash trimmed",
			value: "https://lnk.example.com/",
			want:  "https://lnk.example.com",
		},
		{
			name:    "Missing scheme",
			value:   "localhost:8080",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var prefix URLPrefix

			// Act
			err := prefix.Set(tt.value)

			// Assert
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, prefix.String())
		})
	}
}
