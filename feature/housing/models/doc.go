// Package models contains the GORM row shapes of the housing tables:
// 'land', 'house', 'houseiteminventory', 'charaglobalitem' and 'landplaceditems'.
package models
