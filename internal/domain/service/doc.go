// Package service defines interfaces for domain services implemented by infrastructure adapters.
package service
