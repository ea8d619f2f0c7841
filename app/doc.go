/*
Package app contains the ABCI plumbing of a tollgate application.

StoreApp keeps the committed IAVL state together with the check and deliver
caches, answers queries and loads the genesis. BaseApp adds transaction
decoding and dispatches every transaction through a Handler, usually a
chain of decorators built with ChainDecorators ending in a Router.
*/
package app
