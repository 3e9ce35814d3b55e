// Package infra contains technical adapters such as the catalog
// download, name-resolution and telescope-schedule clients. These
// packages should depend only on the interfaces defined in the core
// packages.
package infra
