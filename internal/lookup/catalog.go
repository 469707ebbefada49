package lookup

// DefaultEntities is the built-in lookup catalog used when the configuration
// lists no entities.
func DefaultEntities() []EntityConfig {
	return []EntityConfig{
		{Name: "customers", Collection: "/lookups/customers"},
		{Name: "skus", Collection: "/lookups/skus", DefaultLimit: 50},
		{Name: "products", Collection: "/lookups/products"},
		{Name: "warehouses", Collection: "/lookups/warehouses"},
		{Name: "locations", Collection: "/lookups/locations"},
		{Name: "order-statuses", Collection: "/lookups/order-statuses"},
		{Name: "roles", Collection: "/lookups/roles", Permission: "roles:read"},
		{Name: "users", Collection: "/lookups/users", Permission: "users:read"},
		{Name: "pricing-tiers", Collection: "/lookups/pricing-tiers", Permission: "pricing:read"},
		{Name: "batch-registry", Collection: "/lookups/batch-registry", MaxItems: DefaultMaxItems},
		{Name: "packaging-materials", Collection: "/lookups/packaging-materials", MaxItems: DefaultMaxItems},
		{Name: "suppliers", Collection: "/lookups/suppliers"},
		{Name: "payment-methods", Collection: "/lookups/payment-methods"},
		{Name: "delivery-methods", Collection: "/lookups/delivery-methods"},
		{Name: "tax-rates", Collection: "/lookups/tax-rates"},
		{Name: "units-of-measure", Collection: "/lookups/units-of-measure"},
	}
}
