// internal/types/types.go
package types

// EntityID identifies an entity in the scene world. Zero is "no entity".
type EntityID uint32
