package cli

import (
	"encoding/base64"
	"fmt"
	"os"

	backend "github.com/redis/go-redis/v9"
	"golang.org/x/term"

	"github.com/aretw0/gantry/internal/adapters/memory"
	redisAdapter "github.com/aretw0/gantry/internal/adapters/redis"
	"github.com/aretw0/gantry/internal/presentation/tui"
	"github.com/aretw0/gantry/pkg/persistence/middleware"
	"github.com/aretw0/gantry/pkg/ports"
)

// stateKeyEnv holds a base64 AES-256 key. When set, persisted runs are
// encrypted at rest.
const stateKeyEnv = "GANTRY_STATE_KEY"

// newStore picks the run store from the options: Redis when an address is
// configured, in-memory otherwise. Redis runs also get a session locker so
// two hosts cannot drive the same session.
func newStore(opts RunOptions) (ports.RunStore, ports.SessionLocker, error) {
	var store ports.RunStore
	var locker ports.SessionLocker

	if opts.RedisAddr == "" {
		store = memory.NewStore()
	} else {
		client := backend.NewClient(&backend.Options{Addr: opts.RedisAddr})
		store = redisAdapter.NewFromClient(client)
		locker = redisAdapter.NewLocker(client, "gantry:run:")
	}

	if encoded := os.Getenv(stateKeyEnv); encoded != "" {
		key, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, nil, fmt.Errorf("%s is not valid base64: %w", stateKeyEnv, err)
		}
		if len(key) != 32 {
			return nil, nil, fmt.Errorf("%s must decode to 32 bytes, got %d", stateKeyEnv, len(key))
		}
		store = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})(store)
	}

	return store, locker, nil
}

// isTerminal reports whether stdout is an interactive terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newReplyRenderer returns the function used to surface agent replies.
// Interactive sessions get glamour-rendered markdown; headless runs print
// the raw reply so output stays machine-consumable.
func newReplyRenderer(interactive bool) func(string) {
	if !interactive {
		return func(reply string) {
			fmt.Println(reply)
		}
	}

	render := tui.NewRenderer()
	return func(reply string) {
		pretty, err := render(reply)
		if err != nil {
			fmt.Println(reply)
			return
		}
		fmt.Print(pretty)
	}
}
