// Package catalog defines error categories in YAML files so tools can render
// packed errors from domains they do not link against.
//
// A catalog document names a domain (or its tag directly) and lists a message
// per code:
//
//	domain: "one::errc"
//	name: core
//	messages:
//	  0: failure
//	  1: unknown
//
// Several documents may share a file, separated by "---".
//
// # Loading
//
// Loader reads catalogs through a core.ReadFS, so the same code works against
// the local disk and an in-memory filesystem:
//
//	loader := catalog.NewLoader(billy.NewLocal())
//	cats, err := loader.Load(ctx, "catalogs")
//	if err != nil {
//	    return err
//	}
//	if err := catalog.RegisterAll(errdomain.Default(), cats...); err != nil {
//	    return err
//	}
//
// All failures are errors.PlatformError values carrying CodeNotFound,
// CodeInvalidInput or CodeConflict.
package catalog
