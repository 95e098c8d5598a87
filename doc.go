// Package cashbook implements a single-user personal finance ledger backed
// by a local JSON document store.
//
// The store file holds three documents: accounts (balances, passwords,
// budgets and transaction history), a shared shopping cart of planned and
// confirmed purchases, and the set of category tags transactions refer to.
// The Ledger, TagRegistry and ShoppingCart types are stateless facades that
// read a document, mutate a copy and write it back atomically. The report
// functions compute date- and category-filtered aggregates over a snapshot
// of transactions and never mutate the store.
package cashbook
