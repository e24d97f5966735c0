// Package postgresengine provides PostgreSQL-backed storage for the pricing calculators.
//
// CartDatabase implements shoppingcart.Database, BookCatalog implements both
// barnes.BookDatabase and barnes.BuyBookProcess. Both support multiple database adapters
// (pgx, sql.DB, sqlx) and build their SQL with goqu.
//
// Usage examples:
//
//	db, _ := pgxpool.New(context.Background(), dsn)
//	carts, _ := postgresengine.NewCartDatabaseFromPGXPool(db)
//	_ = carts.CreateSchema(ctx)
//
//	// With a replica for catalog lookups under eventual consistency
//	catalog, _ := postgresengine.NewBookCatalogFromPGXPoolWithReplica(
//		db,
//		replica,
//		postgresengine.WithLogger(slog.Default()),
//	)
//	book, _ := catalog.FindByISBN(pricing.WithEventualConsistency(ctx), isbn)
package postgresengine
