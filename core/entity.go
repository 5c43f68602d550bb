package core

// Entity is a unique identifier for an entity
// Zero is never allocated and acts as the "no entity" sentinel
type Entity uint64

// NoEntity is the zero sentinel returned by lookups that find nothing
const NoEntity Entity = 0
