// Package middleware provides composable wrappers around a RunStore.
package middleware

import "github.com/aretw0/gantry/pkg/ports"

// Middleware allows wrapping a RunStore to add behavior.
type Middleware func(ports.RunStore) ports.RunStore
