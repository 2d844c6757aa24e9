/*
Package wallet implements the wallet ledger engine: per-user monetary
balances and the append-only transaction ledger behind them.

Every operation takes the authenticated owner identifier as its first
argument and verifies wallet ownership before touching state. Mutations
(deposit, withdraw, transfer) follow an optimistic concurrency protocol:
the wallet is read together with its version counter, the new balance is
computed in memory, and the write commits only if the stored version is
unchanged. A lost race re-reads and retries up to a bounded number of
attempts before surfacing ErrConflict.

Usage:

	svc := wallet.NewService(repo, cache, wallet.Config{}, metrics)

	w, err := svc.CreateWallet(ctx, ownerID, "savings", models.CurrencyUSD)

	err = svc.Deposit(ctx, ownerID, w.ID, decimal.NewFromInt(100))

	err = svc.Transfer(ctx, ownerID, w.ID, otherWalletID, decimal.NewFromInt(25))

	page, err := svc.FilterTransactions(ctx, ownerID, w.ID, wallet.TransactionFilter{
		From:     from,
		To:       to,
		Page:     0,
		PageSize: 20,
	})

Balance updates and their ledger entries always commit in one storage
transaction; a transfer's two balance writes and its single TRANSFER
record are all-or-nothing. Balances never go negative and ledger rows
are never rewritten.
*/
package wallet
