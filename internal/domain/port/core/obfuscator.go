package core

// Obfuscator redacts a message before it is emitted
type Obfuscator interface {
	Obfuscate(msg string) string
}

// ObfuscatorFunc adapts a function to Obfuscator
type ObfuscatorFunc func(msg string) string

// Obfuscate calls f(msg)
func (f ObfuscatorFunc) Obfuscate(msg string) string {
	return f(msg)
}
