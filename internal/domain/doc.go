// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/menu). This root package
// holds the sentinel errors and the validation error type shared by every
// layer.
package domain
