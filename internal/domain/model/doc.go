// Package model contains the domain values shared between the fixture store,
// roster assembly and the HTTP layer.
package model
