// Package models contains the GORM persistence models and their conversions
// to and from domain entities. Models carry the schema tags; domain entities
// stay free of persistence concerns.
package models
