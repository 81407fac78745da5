// Package auth propaga el usuario autenticado (actor) a través de context.Context
// para que los casos de uso estampen la auditoría sin depender de la capa HTTP.
package auth

import "context"

// SystemActor usuario usado cuando la operación no viene de una petición autenticada.
const SystemActor = "system"

type actorKey struct{}

// WithActor agrega el username del actor al contexto.
func WithActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorKey{}, username)
}

// Actor devuelve el username del contexto o SystemActor si no hay ninguno.
func Actor(ctx context.Context) string {
	if u, ok := ctx.Value(actorKey{}).(string); ok && u != "" {
		return u
	}
	return SystemActor
}
