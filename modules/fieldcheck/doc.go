// Package fieldcheck serves field validation over HTTP.
//
//	POST /validate        {"value": "...", "type": "..."} or form fields
//	GET  /validate        ?value=...&type=...
//	GET  /types           every supported tag with its message
//	GET  /types/{type}    one tag, 404 when unknown
//
// Validation outcomes are data: an invalid value still answers 200 with
// {"data": {"valid": false, "error": "..."}}.
package fieldcheck
