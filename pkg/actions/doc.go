// Package actions holds the catalogue of hook actions.
//
// An action is what a package asks pkghooks to do when it is installed,
// updated or removed. Packages name actions in their hook section:
//
//	"pkghooks": {
//	    "packages": {"acme.yaml": ["acme:", "  enabled: true"]},
//	    "bundles": {"Acme\\AcmeBundle": {"all": true}}
//	}
//
// Actions are created through factories held by a Registry. Factories are
// validated when registered, so a broken action is rejected at startup and
// never during a host event.
package actions
