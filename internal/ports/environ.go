package ports

// Environ abstracts the process environment so the reuse transfer can
// republish credentials without the rest of the code reading ambient
// state directly.
type Environ interface {
	Get(key string) string
	Set(key, value string) error
}
