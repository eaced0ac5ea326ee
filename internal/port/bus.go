package port

// Bus is the change notification fan-out that tells renderers to re-read the
// store. Notifications carry no payload; receivers re-load on receipt.
type Bus interface {
	// Notify broadcasts to every same-process subscriber. It never blocks:
	// a subscriber that already has a pending notification is skipped, which
	// coalesces rapid repeated saves into a single re-read.
	Notify()

	// Subscribe returns a channel that receives one value per pending
	// notification, and an unsubscribe func the caller must run on shutdown.
	Subscribe() (<-chan struct{}, func())
}
