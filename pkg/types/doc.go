// Package types defines the Page and Store types, the Storage interface,
// configuration, and standard errors for the kpalwiki page store.
package types
