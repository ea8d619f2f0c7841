/*
Package tollgate defines the common interfaces used to weave together the
application packages, as well as implementations of some of the simpler
components (when interfaces would be too much overhead).

A transaction travels from the ABCI application, through a chain of
decorators, to the handler registered for the path of the message it
carries. Every step receives a Context, the KVStore the transaction is
allowed to modify and the Tx itself.

The context carries information about the block being processed, such as the
block time, the height and the chain id, as well as the logger. For every
value XYZ of type T kept in the context there are two functions:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)

WithXYZ may panic if the value was previously set, to avoid lower-level
modules overwriting it.
*/
package tollgate
