package cart

import (
	"github.com/slicelab/pizzacart/internal/domain"
	"github.com/slicelab/pizzacart/internal/port"
)

// BindCatalog reconciles the cart against the provider's current snapshot
// and re-runs the validation pass on every replacement. Returns the
// unsubscribe func.
func BindCatalog(c *Cart, provider port.CatalogProvider) func() {
	c.ValidateItems(provider.CurrentSnapshot())

	return provider.OnSnapshotReplaced(func(snapshot domain.CatalogSnapshot) {
		c.ValidateItems(snapshot)
	})
}
