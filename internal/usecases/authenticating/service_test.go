package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/commerce-insights-api/internal/config"
)

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := NewService(config.Auth{Secret: "segredo", TokenTTL: time.Hour})

	token, err := service.GenerateToken("painel-bi")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "painel-bi", claims.ClientName)
	assert.Equal(t, "painel-bi", claims.Subject)
}

func TestService_ValidateToken(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	signer := &Service{cfg: config.Auth{Secret: "segredo", TokenTTL: time.Hour}, now: func() time.Time { return issuedAt }}

	token, err := signer.GenerateToken("painel-bi")
	require.NoError(t, err)

	tests := []struct {
		name        string
		service     *Service
		token       string
		expectedErr error
	}{
		{
			name:    "Token válido dentro da validade",
			service: &Service{cfg: signer.cfg, now: func() time.Time { return issuedAt.Add(30 * time.Minute) }},
			token:   token,
		},
		{
			name:        "Token expirado",
			service:     &Service{cfg: signer.cfg, now: func() time.Time { return issuedAt.Add(2 * time.Hour) }},
			token:       token,
			expectedErr: ErrExpiredToken,
		},
		{
			name:        "Segredo diferente",
			service:     &Service{cfg: config.Auth{Secret: "outro"}, now: func() time.Time { return issuedAt }},
			token:       token,
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "Token malformado",
			service:     signer,
			token:       "abc.def",
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.service.ValidateToken(tt.token)
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.True(t, errors.Is(err, tt.expectedErr))
			assert.True(t, IsAuthorizationError(err))
		})
	}
}

func TestService_GenerateTokenErrors(t *testing.T) {
	_, err := NewService(config.Auth{}).GenerateToken("painel-bi")
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = NewService(config.Auth{Secret: "segredo"}).GenerateToken("")
	assert.ErrorIs(t, err, ErrMissingClient)
}
