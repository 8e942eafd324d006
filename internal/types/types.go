// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности внутри одной сессии.
type EntityID uint32
