package nourl

import "strings"

// Scheme identifies one of the supported URL schemes. The set is closed:
// adding a scheme means adding a constant here plus an entry in each of
// the switches below (String, DefaultPort, ParseScheme).
type Scheme uint8

const (
	// SchemeHTTP is the http scheme.
	SchemeHTTP Scheme = iota
	// SchemeHTTPS is the https (HTTP over TLS) scheme.
	SchemeHTTPS
	// SchemeMQTT is the mqtt scheme.
	SchemeMQTT
	// SchemeMQTTS is the mqtts (MQTT over TLS) scheme.
	SchemeMQTTS
)

// String returns the lowercase name of the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeHTTP:
		return "http"
	case SchemeHTTPS:
		return "https"
	case SchemeMQTT:
		return "mqtt"
	case SchemeMQTTS:
		return "mqtts"
	}
	return "unknown"
}

// DefaultPort returns the well-known port implied by the scheme when a
// URL carries no explicit port:
//
//	http  -> 80
//	https -> 443
//	mqtt  -> 1883
//	mqtts -> 8883
func (s Scheme) DefaultPort() uint16 {
	switch s {
	case SchemeHTTP:
		return 80
	case SchemeHTTPS:
		return 443
	case SchemeMQTT:
		return 1883
	case SchemeMQTTS:
		return 8883
	}
	return 0
}

// IsSecure reports whether the scheme carries TLS (https, mqtts).
func (s Scheme) IsSecure() bool {
	return s == SchemeHTTPS || s == SchemeMQTTS
}

// ParseScheme looks up a scheme by name. Matching is case-insensitive
// and allocation-free. The second return value is false when the name is
// not in the supported set.
func ParseScheme(name string) (Scheme, bool) {
	switch {
	case strings.EqualFold(name, "http"):
		return SchemeHTTP, true
	case strings.EqualFold(name, "https"):
		return SchemeHTTPS, true
	case strings.EqualFold(name, "mqtt"):
		return SchemeMQTT, true
	case strings.EqualFold(name, "mqtts"):
		return SchemeMQTTS, true
	}
	return 0, false
}
