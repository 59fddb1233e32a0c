// Package domain contains the core model for solidlab: library books and
// regional vehicles.
//
// The domain is storage- and transport-agnostic: it does not depend on YAML,
// SQL or the terminal. Infra/adapters map into/from these types.
package domain
