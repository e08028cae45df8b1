// Package embed rewrites local image references in an HTML document into
// base64 data URIs so the document can be opened without its assets.
package embed
