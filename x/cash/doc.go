/*
Package cash holds the wallets of every account and moves coins between
them. It is the settlement layer for the other extensions: anything that
needs to pay out uses a CoinMover.
*/
package cash
