/*
Package x contains some standard extensions.

Extensions implement common functionality (Handler, Decorator, etc.) and
can be combined together to construct an application.

All sub-packages are various extensions. This package only holds the
Authenticator abstraction they all share.
*/
package x
