// Package endpoints loads and lints YAML endpoint manifests.
//
// A manifest names the URLs a project cares about, one per entry:
//
//	endpoints:
//	  - name: api
//	    url: https://api.example.com/health
//	  - name: broker
//	    url: mqtts://broker.example.com
//
// Load reads a manifest after validating the path against traversal
// attacks. Lint checks every entry and collects all problems instead of
// stopping at the first one, so a single run reports everything wrong
// with a file:
//
//	manifest, err := endpoints.Load("endpoints.yaml")
//	if err != nil {
//	    return err
//	}
//	for _, issue := range endpoints.Lint(manifest) {
//	    fmt.Println(issue.Error())
//	}
//
// Endpoint names follow DNS label rules (alphanumeric start, then
// alphanumeric, underscore, hyphen, or dot, at most 63 characters) and
// must be unique within a manifest. URLs must parse under the strict
// scheme://host[:port][/path][?query] grammar.
package endpoints
