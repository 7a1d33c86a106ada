package server_test

import (
	"testing"
	"time"

	"listsync/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"Default", "8080", false},
		{"Low", "1", false},
		{"Zero", "0", true},
		{"Too High", "70000", true},
		{"Not A Number", "http", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := server.Config{Port: tt.port}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Address(t *testing.T) {
	c := server.Config{Port: "9000", ReadTimeoutSeconds: 5}
	assert.Equal(t, ":9000", c.Address())
	assert.Equal(t, 5*time.Second, c.ReadTimeout())
}
