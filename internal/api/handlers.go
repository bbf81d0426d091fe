package api

import "sync"

// Handler registry variables store the registered implementations.
// These variables are protected by handlerMutex for thread-safe access.
var (
	updaterHandler   UpdaterHandler
	discoveryHandler DiscoveryHandler

	handlerMutex sync.RWMutex
)

// RegisterUpdater registers the updater handler implementation.
//
// The registration is thread-safe and should be called during bootstrap.
// Only one updater handler can be registered at a time; a subsequent
// registration replaces the previous handler.
func RegisterUpdater(h UpdaterHandler) {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	updaterHandler = h
}

// GetUpdater returns the registered updater handler, or nil if bootstrap has
// not registered one yet. Callers must handle nil.
func GetUpdater() UpdaterHandler {
	handlerMutex.RLock()
	defer handlerMutex.RUnlock()
	return updaterHandler
}

// RegisterDiscovery registers the feature discovery handler implementation.
func RegisterDiscovery(h DiscoveryHandler) {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	discoveryHandler = h
}

// GetDiscovery returns the registered discovery handler, or nil if none is
// registered.
func GetDiscovery() DiscoveryHandler {
	handlerMutex.RLock()
	defer handlerMutex.RUnlock()
	return discoveryHandler
}

// ResetForTest clears all registered handlers. Test helper only.
func ResetForTest() {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	updaterHandler = nil
	discoveryHandler = nil
}
