// Package contact maintains the alias book used to address peers by name.
package contact
