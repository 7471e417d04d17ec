package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("Valid Config", func(t *testing.T) {
		client, err := NewClient(Config{
			Endpoint:  "localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Strips Scheme", func(t *testing.T) {
		client, err := NewClient(Config{
			Endpoint:  "https://storage.example.com",
			AccessKey: "key",
			SecretKey: "secret",
			UseSSL:    true,
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Invalid Endpoint", func(t *testing.T) {
		_, err := NewClient(Config{Endpoint: "http://"})
		assert.Error(t, err)
	})
}
