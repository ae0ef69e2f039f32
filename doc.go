// Package iinject loads scripts and stylesheets into a document on demand.
//
// # Quick Start
//
// Create a loader over a host and load assets by name:
//
//	page, err := iinject.ParsePage(strings.NewReader(src))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loader, err := iinject.New(page)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := loader.Load(ctx, "spservices", nil); err != nil {
//	    log.Fatal(err)
//	}
//	page.Render(os.Stdout)
//
// # Loading Protocol
//
// Each Load runs in two phases:
//
//  1. Resolve builds a Descriptor from defaults, the registry entry and
//     the caller's Options (caller wins). When the asset names a dependent
//     symbol that the host lacks and the registry knows, the dependency is
//     attached as a nested Descriptor, one level deep.
//  2. Execute walks the descriptor dependency-first. An asset whose
//     existence symbol is already defined is skipped; otherwise its element
//     is appended to the head or body.
//
// Resolve never mutates the document, so descriptors can be inspected
// before anything is injected.
//
// # Strategies
//
// Three injection methods exist, selected by name with ParseMethod:
//
//	js        <script type="text/javascript" src="...">
//	css       <link rel="stylesheet" type="text/css" href="...">
//	inlineJS  <script type="text/javascript">body</script>
//
// Unknown method names fail with ErrUnknownMethod.
//
// # Hosts
//
// A Host supplies global symbol lookups and element insertion. Page is a
// static HTML document whose globals are declared by the caller. Tab is a
// live Chrome page opened through LaunchBrowser.
//
// # Registry
//
// The built-in registry knows headjs, jquery and spservices. Supply another
// with WithRegistry, or overlay a YAML file with WithRegistryFile:
//
//	assets:
//	  mylib:
//	    src: https://cdn.example.com/mylib.js
//	    exists: MyLib
//	    dependentVar: jQuery
//
// # Error Handling
//
// Errors wrap package sentinels; check them with errors.Is:
//
//	_, err := loader.Load(ctx, "custom", nil)
//	if errors.Is(err, iinject.ErrInvalidSource) {
//	    // no src for an unregistered asset
//	}
//
// Load failures observed by the host are reported to Options.OnError with
// an error wrapping ErrLoadFailed.
package iinject
