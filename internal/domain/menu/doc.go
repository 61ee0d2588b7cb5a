// Package menu defines the menu contribution model: menu paths, the items a
// plugin contributes under a location token, and the actions submitted to
// the host menu registry.
package menu
