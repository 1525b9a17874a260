package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gestioncursos/config"
	"gestioncursos/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	token, err := utils.GenerateToken("admin", cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ParseToken(token, cfg)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, utils.AdminRole, claims["role"])
	assert.NotNil(t, claims["exp"])
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := utils.GenerateToken("admin", &config.Config{JWTSecret: "one"})
	assert.NoError(t, err)

	_, err = utils.ParseToken(token, &config.Config{JWTSecret: "another"})
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := utils.ParseToken("definitely.not.a.jwt", &config.Config{JWTSecret: "testsecret"})
	assert.Error(t, err)
}
