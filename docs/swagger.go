// Package docs Tensora Count Backend API.
//
// Backend for crowd-count aggregation. Ingests per-camera occupancy
// samples written by upstream detectors and serves a unified, smoothed
// occupancy time series per area, plus the project/camera/area
// configuration that drives the aggregation.
//
//	Schemes: http, https
//	BasePath: /api/v1
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- image/png
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: X-API-KEY
//	     in: header
//
// swagger:meta
package docs
