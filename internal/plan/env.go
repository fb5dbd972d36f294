package plan

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// envContext builds the evaluation context plan expressions are decoded
// with. It exposes the process environment as the `env` map so plans can
// reference deployment-specific values without hardcoding them:
//
//	seeder "http_post" "import" {
//	  arguments {
//	    url  = env.SEED_ENDPOINT
//	    from = "users"
//	  }
//	}
func envContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, entry := range os.Environ() {
		key, value, _ := strings.Cut(entry, "=")
		if key == "" {
			continue
		}
		vars[key] = cty.StringVal(value)
	}

	env := cty.MapValEmpty(cty.String)
	if len(vars) > 0 {
		env = cty.MapVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
