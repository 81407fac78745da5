package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/erp-inventario/internal/application/auth"
)

func TestActor_SinUsuarioDevuelveSystem(t *testing.T) {
	assert.Equal(t, auth.SystemActor, auth.Actor(context.Background()))
	assert.Equal(t, auth.SystemActor, auth.Actor(auth.WithActor(context.Background(), "")))
}

func TestActor_DevuelveUsuarioDelContexto(t *testing.T) {
	ctx := auth.WithActor(context.Background(), "unit-test")
	assert.Equal(t, "unit-test", auth.Actor(ctx))
}
