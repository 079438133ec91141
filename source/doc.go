// Package source resolves a locator to a readable stream.
//
// Supported locators:
//
//	/data/numbers.xlsx          local path
//	file:///data/numbers.xlsx   local path
//	s3://bucket/numbers.xlsx    S3 or S3-compatible object
//
// Open failures are returned as SOURCE_UNAVAILABLE errors whose kind
// (not_found, permission, io) comes from Classify, which inspects error
// types and never message text.
//
// # Configuration
//
//	source:
//	  base_path: "/srv/data"
//	  s3:
//	    enabled: true
//	    region: "eu-west-1"
//	    endpoint: "http://localhost:9000"
//	    force_path_style: true
package source
