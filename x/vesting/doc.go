/*
Package vesting distributes a fixed pool of a single asset to a fixed set of
recipients over time.

Every recipient vests over a number of periods that depends on the size of
its allocation. Only a block of periods is approved at a time. Once the
approved periods elapsed, the authority must pass the next tollgate by
approving it. Disapproval stops the vesting for good: the recipient keeps
what it was entitled to at that time and the rest is sent to the treasury.
*/
package vesting
