package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventario/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate("s3cr3t", "ana.rios", "bodeguero", "erp-inventario", 5)
	require.NoError(t, err)

	username, role, err := jwt.Parse("s3cr3t", token)
	require.NoError(t, err)
	assert.Equal(t, "ana.rios", username)
	assert.Equal(t, "bodeguero", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("s3cr3t", "ana.rios", "admin", "erp-inventario", 5)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate("s3cr3t", "ana.rios", "admin", "erp-inventario", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse("s3cr3t", token)
	assert.Error(t, err)
}

func TestGenerate_SinSecreto(t *testing.T) {
	_, err := jwt.Generate("", "ana.rios", "admin", "erp-inventario", 5)
	assert.Error(t, err)
}
