package facade

import (
	"strings"
	"unicode"

	coreport "github.com/amirhossein-jamali/logcat/internal/domain/port/core"
)

// Obfuscation is the per-call obfuscation decision
type Obfuscation int

const (
	// ObfuscateDefault follows the façade's obfuscate-by-default flag
	ObfuscateDefault Obfuscation = iota
	// ObfuscateOn obfuscates when an obfuscator is installed
	ObfuscateOn
	// ObfuscateOff never obfuscates
	ObfuscateOff
)

// ObfuscationOf converts an explicit per-call flag
func ObfuscationOf(obfuscate bool) Obfuscation {
	if obfuscate {
		return ObfuscateOn
	}
	return ObfuscateOff
}

// SetObfuscator installs the message transform. nil removes it.
func (f *Facade) SetObfuscator(o coreport.Obfuscator) {
	if o == nil {
		f.obfuscator.Store(nil)
		return
	}
	f.obfuscator.Store(&obfuscatorHolder{obfuscator: o})
}

// Obfuscator returns the installed transform, nil when there is none
func (f *Facade) Obfuscator() coreport.Obfuscator {
	if h := f.obfuscator.Load(); h != nil {
		return h.obfuscator
	}
	return nil
}

// SetObfuscateByDefault sets whether messages without an explicit decision are obfuscated
func (f *Facade) SetObfuscateByDefault(obfuscate bool) {
	f.obfuscateByDefault.Store(obfuscate)
}

// ObfuscateByDefault returns the default obfuscation flag
func (f *Facade) ObfuscateByDefault() bool {
	return f.obfuscateByDefault.Load()
}

func (f *Facade) obfuscate(msg string, decision Obfuscation) string {
	switch decision {
	case ObfuscateOff:
		return msg
	case ObfuscateDefault:
		if !f.obfuscateByDefault.Load() {
			return msg
		}
	}

	o := f.Obfuscator()
	if o == nil {
		return msg
	}
	return o.Obfuscate(msg)
}

// SimpleNumberObfuscator masks every decimal digit
type SimpleNumberObfuscator struct {
	// Mask replaces each digit, '*' when zero
	Mask rune
}

// Obfuscate implements coreport.Obfuscator
func (o SimpleNumberObfuscator) Obfuscate(msg string) string {
	mask := o.Mask
	if mask == 0 {
		mask = '*'
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return mask
		}
		return r
	}, msg)
}
