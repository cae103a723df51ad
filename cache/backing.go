package cache

// BackingFunc adapts a function to BackingStore.
type BackingFunc func(addr uint32, buf []byte) error

// ReadBlock calls f(addr, buf).
func (f BackingFunc) ReadBlock(addr uint32, buf []byte) error {
	return f(addr, buf)
}
