// Package plan loads seed plans from HCL files and binds them to the kind
// catalog, producing the seeder registry a run executes.
//
// A plan is one file or a directory of files. Each file may contain one
// optional run block (run-wide options) and any number of seeder blocks:
//
//	run {
//	  continue_on_failure = true
//	  cache_dir           = ".seedweave-cache"
//	  seed                = 42
//	}
//
//	seeder "fake" "users" {
//	  description = "fifty plausible user rows"
//	  depends_on  = ["tenants"]
//	  arguments {
//	    count  = 50
//	    fields = { name = "name", email = "email" }
//	  }
//	}
//
// The two labels are the kind (a registered behavior) and the instance
// name (the seeder's unique name in the run). The arguments block is
// decoded into the kind's own input struct, so each kind declares its
// argument schema in Go.
//
// Expressions may reference the process environment through the `env` map,
// e.g. `url = env.SEED_ENDPOINT`.
package plan
