/*
Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Every extension owns at most one configuration singleton, stored under the
"_c:<pkg>" key. A configuration can be created from the genesis file
(InitConfig) or at runtime (Save) and is always validated before being
written.
*/
package gconf
