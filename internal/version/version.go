package version

// AppVersion is the tprint CLI version, overridable at build time via
// -ldflags "-X tprint/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
