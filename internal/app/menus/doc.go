// Package menus turns plugin menu contributions into host menu registrations.
//
// A ContributionHandler resolves each contributed location token through a
// Resolver, parses the item's "group@order" field and hands the result to a
// Registrar. The Registrar defers every registration behind a Gate so the
// target command has a chance to be registered first:
//
//	resolver := menus.NewResolver(table)
//	registrar := menus.NewRegistrar(host, menus.NewReadinessGate(commands, 30*time.Second), logger, metrics)
//	handler := menus.NewContributionHandler(resolver, registrar, logger, metrics)
//
//	handler.HandleMenus(ctx, "my.plugin", set) // returns immediately
//	_ = registrar.Drain(ctx)                    // wait for the host calls
package menus
