// Package keymutex implementa una arena de locks indexada por clave
// (product_id). Claves distintas nunca compiten entre sí; la adquisición
// respeta el context, lo que permite un timeout acotado en vez de bloquear
// indefinidamente.
package keymutex

import (
	"context"
	"sync"
)

type entry struct {
	ch   chan struct{} // semáforo binario: lleno = libre
	refs int
}

// KeyMutex serializa secciones críticas por clave. Seguro para uso concurrente.
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// New crea la arena vacía.
func New() *KeyMutex {
	return &KeyMutex{locks: make(map[string]*entry)}
}

// Lock adquiere el lock de la clave, esperando hasta que esté libre o el
// context expire. Devuelve ctx.Err() si expiró sin adquirir.
func (k *KeyMutex) Lock(ctx context.Context, key string) error {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		e.ch <- struct{}{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case <-e.ch:
		return nil
	case <-ctx.Done():
		k.release(key, e)
		return ctx.Err()
	}
}

// Unlock libera el lock de la clave. Llamar exactamente una vez por Lock exitoso.
func (k *KeyMutex) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	k.mu.Unlock()
	if !ok {
		return
	}
	e.ch <- struct{}{}
	k.release(key, e)
}

// release descuenta la referencia y recoge la entrada cuando nadie la espera.
func (k *KeyMutex) release(key string, e *entry) {
	k.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()
}
