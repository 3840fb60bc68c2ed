// Package models contains GORM persistence models that map to database tables.
// Domain entities stay free of ORM tags; every model converts with ToDomain
// and FromDomain. Line items and extracted rows are stored as JSON arrays.
package models
