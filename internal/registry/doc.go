// Package registry holds the table of known assets: logical name to source
// URL, existence symbol and optional dependent symbol.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in registry.yaml compiled into the binary
//	    ├── FilesystemLoader  - a registry YAML file on disk
//	    └── Resolver          - embedded entries overlaid by a custom file
//
// A Registry is built once by New and never mutated afterwards. Every entry
// is normalized at construction: missing method and placement fields take
// the package defaults, and names are lower-cased.
//
// # File Format
//
//	assets:
//	  jquery:
//	    src: //ajax.googleapis.com/ajax/libs/jquery/1.11.1/jquery.min.js
//	    exists: jQuery
//	  spservices:
//	    src: //cdnjs.cloudflare.com/.../jquery.SPServices.min.js
//	    exists: SPServices
//	    dependentVar: jQuery
//	    method: js        # js, css or inlineJS (default js)
//	    inHead: true      # default true
package registry
