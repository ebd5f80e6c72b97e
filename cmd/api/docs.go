// Package main serves the CosmicMatch API.
//
// @title CosmicMatch API
// @version 1.0
// @description Birth chart computation and generated astrological readings.
// @BasePath /
// @schemes http https
package main
