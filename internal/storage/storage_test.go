package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"auditapi/internal/config"
)

func TestArtifactKey(t *testing.T) {
	assert.Equal(t, "environments/prod-db/1.1-d1.json", ArtifactKey("prod-db", "1.1", "d1"))
	assert.Equal(t, "environments/a_b/_-__.json", ArtifactKey("a/b", "..", "../"))
	assert.NotEqual(t, ArtifactKey("prod", "2.0", "d1"), ArtifactKey("prod", "2.0", "d2"))
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.MinIOConfig
		wantErr string
	}{
		{name: "missing endpoint", cfg: config.MinIOConfig{}, wantErr: "endpoint is required"},
		{name: "missing credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000"}, wantErr: "credentials are required"},
		{
			name:    "missing bucket",
			cfg:     config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"},
			wantErr: "bucket is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Nil(t, s)
		})
	}
}
